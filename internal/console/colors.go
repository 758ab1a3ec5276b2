package console

// Terminal color codes
const (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

// palette wraps text in colour codes, or passes it through when disabled.
type palette struct {
	enabled bool
}

func (p palette) paint(code, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	return code + text + Reset
}

func (p palette) paintByte(code string, c byte) string {
	return p.paint(code, string(c))
}
