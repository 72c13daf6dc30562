package quality

import (
	"fmt"
	"strings"

	"brandforge/internal/domain/brand"
)

// Fallback composes content directly from the profile when generation keeps
// missing the bar. It always names the business and its first service, ends
// with a call to action, and stays inside the structural length limits, so
// the pipeline never returns empty content.
func Fallback(p brand.NormalizedProfile) string {
	name := p.BusinessName
	if name == "" {
		name = "Your business"
	}
	service := "great service"
	if len(p.Services) > 0 {
		service = p.Services[0]
	}
	audience := "our customers"
	if p.TargetAudience != "" {
		audience = p.TargetAudience
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s\n\n", name, service)
	fmt.Fprintf(&b, "%s brings %s to %s", name, strings.ToLower(service), audience)
	if p.Location != "" && p.Location != "Global" {
		fmt.Fprintf(&b, " in %s", p.Location)
	}
	b.WriteString(". ")
	if len(p.KeyFeatures) > 0 {
		fmt.Fprintf(&b, "Known for %s. ", strings.ToLower(p.KeyFeatures[0]))
	}
	b.WriteString("Visit us today!")

	fmt.Fprintf(&b, "\n\n#%s #%s", hashtag(name), hashtag(string(p.BusinessType)))
	if city := firstSegment(p.Location); city != "" && city != "Global" {
		fmt.Fprintf(&b, " #%s", hashtag(city))
	}
	return b.String()
}

// hashtag strips a phrase down to a CamelCase tag.
func hashtag(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		clean := strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
				return r
			default:
				return -1
			}
		}, word)
		if clean == "" {
			continue
		}
		b.WriteString(strings.ToUpper(clean[:1]))
		b.WriteString(clean[1:])
	}
	if b.Len() == 0 {
		return "LocalBusiness"
	}
	return b.String()
}

func firstSegment(location string) string {
	seg, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(seg)
}
