package cultural

import (
	"regexp"
	"strings"
)

// adaptRule is one ordered, independently testable text substitution.
type adaptRule struct {
	Name    string
	Applies func(Context) bool
	Apply   func(text string, ctx Context) string
}

var (
	youRe      = regexp.MustCompile(`\b[Yy]ou\b`)
	mustRe     = regexp.MustCompile(`\b[Mm]ust\b`)
	needToRe   = regexp.MustCompile(`\b[Nn]eeds? to\b`)
	dollarLit  = "$"
	adaptRules = []adaptRule{
		{
			Name: "community inclusion",
			Applies: func(c Context) bool {
				s := strings.ToLower(c.CommunicationStyle)
				return strings.Contains(s, "community") || strings.Contains(s, "famil")
			},
			Apply: func(text string, _ Context) string {
				return youRe.ReplaceAllStringFunc(text, func(m string) string {
					if m == "You" {
						return "You and your family"
					}
					return "you and your family"
				})
			},
		},
		{
			Name: "polite softening",
			Applies: func(c Context) bool {
				return strings.Contains(strings.ToLower(c.CommunicationStyle), "polite")
			},
			Apply: func(text string, _ Context) string {
				text = mustRe.ReplaceAllStringFunc(text, func(m string) string {
					if m == "Must" {
						return "Should consider"
					}
					return "should consider"
				})
				return needToRe.ReplaceAllStringFunc(text, func(m string) string {
					if strings.HasPrefix(m, "N") {
						return "Would benefit from"
					}
					return "would benefit from"
				})
			},
		},
		{
			Name: "local currency",
			Applies: func(c Context) bool {
				return c.Currency.Symbol != "" && c.Currency.Symbol != dollarLit
			},
			Apply: func(text string, ctx Context) string {
				return strings.ReplaceAll(text, dollarLit, ctx.Currency.Symbol)
			},
		},
	}
)

// Adapt runs the adaptation rules over text in declaration order, skipping
// rules whose condition the context does not meet.
func Adapt(text string, ctx Context) string {
	for _, r := range adaptRules {
		if r.Applies(ctx) {
			text = r.Apply(text, ctx)
		}
	}
	return text
}
