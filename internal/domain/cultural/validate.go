package cultural

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	twelveHourRe = regexp.MustCompile(`(?i)\b\d{1,2}(:\d{2})?\s?(am|pm)\b`)
	directiveRe  = regexp.MustCompile(`(?i)\b(must|need to|have to)\b`)
)

// Validate flags content that clashes with the market's conventions. Issues
// and suggestions stay index-aligned so callers can present them in pairs.
func Validate(text string, ctx Context) Appropriateness {
	var issues, suggestions []string
	lower := strings.ToLower(text)

	for _, color := range ctx.ColorPreferences.Avoided {
		if !strings.Contains(lower, strings.ToLower(color)) {
			continue
		}
		issues = append(issues, fmt.Sprintf("mentions %q, a color with negative connotations in %s", color, ctx.Country))
		if len(ctx.ColorPreferences.Preferred) > 0 {
			suggestions = append(suggestions, fmt.Sprintf("lean on %s instead", strings.Join(ctx.ColorPreferences.Preferred, " or ")))
		} else {
			suggestions = append(suggestions, fmt.Sprintf("avoid referencing %s", color))
		}
	}

	if ctx.TimeFormat == "24h" && twelveHourRe.MatchString(text) {
		issues = append(issues, "uses 12-hour clock times where the 24-hour format is standard")
		suggestions = append(suggestions, "write times in 24-hour format, for example 18:00 rather than 6pm")
	}

	if ctx.Currency.Code != "USD" && ctx.Currency.Symbol != "$" && strings.Contains(text, "$") {
		issues = append(issues, fmt.Sprintf("prices use $ but the local currency is %s", ctx.Currency.Code))
		suggestions = append(suggestions, fmt.Sprintf("quote prices in %s using %s", ctx.Currency.Code, ctx.Currency.Symbol))
	}

	if strings.Contains(strings.ToLower(ctx.CommunicationStyle), "polite") && directiveRe.MatchString(text) {
		issues = append(issues, "directive phrasing reads as pushy in this market")
		suggestions = append(suggestions, `soften "must" and "need to" into invitations such as "should consider"`)
	}

	return Appropriateness{
		IsAppropriate: len(issues) == 0,
		Issues:        issues,
		Suggestions:   suggestions,
	}
}
