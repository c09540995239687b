package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Accent  bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 9)

	g = append(g, Glyph{
		Key:     "completed",
		Symbol:  "✓",
		Meaning: "smoke-free day",
	}, Glyph{
		Key:     "failed",
		Symbol:  "✗",
		Meaning: "day with cigarettes",
	}, Glyph{
		Key:     "pending",
		Symbol:  "●",
		Meaning: "goal set, evening not confirmed",
	}, Glyph{
		Key:     "empty",
		Symbol:  "·",
		Meaning: "no record for the day",
	}, Glyph{
		Key:     "future",
		Symbol:  " ",
		Meaning: "day has not happened yet",
	}, Glyph{
		Key:     "today",
		Symbol:  "◉",
		Meaning: "the current day",
		Accent:  true,
	}, Glyph{
		Key:     "streak",
		Symbol:  "⚑",
		Meaning: "consecutive smoke-free days",
		Accent:  true,
	}, Glyph{
		Key:     "milestone",
		Symbol:  "♥",
		Meaning: "health recovery milestone",
		Accent:  true,
	}, Glyph{
		Key:     "savings",
		Symbol:  "€",
		Meaning: "money not spent on cigarettes",
		Accent:  true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Mark int

const (
	Completed Mark = iota
	Failed
	Pending
	Empty
	Future
	Today
	Streak
	Milestone
	Savings
)

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}

// ForStatus resolves a day classification to its mark. The today-* variants
// share the plain marks; the today accent is a presentation concern.
func ForStatus(status string) Mark {
	switch status {
	case "completed", "today-completed":
		return Completed
	case "failed", "today-failed":
		return Failed
	case "pending", "today-pending":
		return Pending
	case "future":
		return Future
	default:
		return Empty
	}
}
