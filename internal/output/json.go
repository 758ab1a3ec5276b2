package output

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	Index       int      `json:"index"`
	Seed        int64    `json:"seed"`
	Result      string   `json:"result"`
	Termination string   `json:"termination"`
	PlyCount    int      `json:"plyCount"`
	InitialFEN  string   `json:"initialFEN,omitempty"`
	FinalFEN    string   `json:"finalFEN,omitempty"`
	Hash        string   `json:"hash,omitempty"`
	Moves       []string `json:"moves,omitempty"`
	Duplicate   bool     `json:"duplicate,omitempty"`
	Violation   string   `json:"violation,omitempty"`
}

// JSONSummary represents outcome counts in JSON format.
type JSONSummary struct {
	Games        int     `json:"games"`
	Checkmates   int     `json:"checkmates"`
	WhiteWins    int     `json:"whiteWins"`
	BlackWins    int     `json:"blackWins"`
	Stalemates   int     `json:"stalemates"`
	Unfinished   int     `json:"unfinished"`
	Duplicates   int     `json:"duplicates"`
	Violations   int     `json:"violations"`
	AveragePlies float64 `json:"averagePlies"`
}

// JSONOutput holds multiple games and the summary for array output.
type JSONOutput struct {
	Games   []*JSONGame  `json:"games"`
	Summary *JSONSummary `json:"summary,omitempty"`
}

// GameToJSON converts a game record to JSON format.
func GameToJSON(rec *GameRecord, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		Index:       rec.Index,
		Seed:        rec.Seed,
		Result:      rec.Result(),
		Termination: rec.State.String(),
		PlyCount:    rec.Plies,
		InitialFEN:  rec.StartFEN,
		Duplicate:   rec.Duplicate,
		Violation:   rec.Violation,
	}
	if rec.Hash != 0 {
		jg.Hash = strconv.FormatUint(rec.Hash, 16)
	}
	if cfg.Output.IncludeFEN {
		jg.FinalFEN = rec.FinalFEN
	}
	if cfg.Output.IncludeMoves {
		jg.Moves = rec.Moves
	}
	return jg
}

// SummaryToJSON converts a summary to JSON format.
func SummaryToJSON(s *Summary) *JSONSummary {
	return &JSONSummary{
		Games:        s.Games,
		Checkmates:   s.Checkmates,
		WhiteWins:    s.WhiteWins,
		BlackWins:    s.BlackWins,
		Stalemates:   s.Stalemates,
		Unfinished:   s.Unfinished,
		Duplicates:   s.Duplicates,
		Violations:   s.Violations,
		AveragePlies: s.AveragePlies(),
	}
}

// OutputGamesJSON outputs records and their summary as one JSON document.
func OutputGamesJSON(recs []*GameRecord, summary *Summary, cfg *config.Config, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, 0, len(recs))}
	for _, rec := range recs {
		out.Games = append(out.Games, GameToJSON(rec, cfg))
	}
	if summary != nil {
		out.Summary = SummaryToJSON(summary)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
