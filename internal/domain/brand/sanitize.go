package brand

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	maxFieldLen = 500
	maxListLen  = 20
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// stringField pulls the first usable string for field out of the bag,
// checking keys in order. Non-string scalars are dropped with an issue.
func stringField(raw RawProfile, issues *[]ValidationIssue, field string, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			*issues = append(*issues, ValidationIssue{Field: field, Reason: fmt.Sprintf("expected a string, got %T", v)})
			continue
		}
		if s = clampString(s); s != "" {
			return s
		}
	}
	return ""
}

// listField accepts a list of strings or a single comma-separated string.
func listField(raw RawProfile, issues *[]ValidationIssue, field string, keys ...string) []string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			if items := sanitizeList(strings.Split(s, ",")); len(items) > 0 {
				return items
			}
			continue
		}
		items, err := cast.ToStringSliceE(v)
		if err != nil {
			*issues = append(*issues, ValidationIssue{Field: field, Reason: "expected a list of strings"})
			continue
		}
		if out := sanitizeList(items); len(out) > 0 {
			return out
		}
	}
	return nil
}

// colorsField reads the nested color object and validates each slot as hex.
func colorsField(raw RawProfile, issues *[]ValidationIssue) BrandColors {
	for _, k := range []string{"brandColors", "brand_colors", "colors"} {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		m, err := cast.ToStringMapE(v)
		if err != nil {
			*issues = append(*issues, ValidationIssue{Field: "brandColors", Reason: "expected an object of hex colors"})
			continue
		}
		return BrandColors{
			Primary:    hexColor(m, issues, "primary"),
			Secondary:  hexColor(m, issues, "secondary"),
			Background: hexColor(m, issues, "background"),
			Accent:     hexColor(m, issues, "accent"),
		}
	}
	return BrandColors{}
}

func hexColor(m map[string]any, issues *[]ValidationIssue, slot string) string {
	v, ok := m[slot]
	if !ok || v == nil {
		return ""
	}
	s := strings.TrimSpace(cast.ToString(v))
	if s == "" {
		return ""
	}
	if !hexColorRe.MatchString(s) {
		*issues = append(*issues, ValidationIssue{Field: "brandColors." + slot, Reason: "not a #RGB or #RRGGBB hex color"})
		return ""
	}
	return s
}

func clampString(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > maxFieldLen {
		s = strings.TrimSpace(string(r[:maxFieldLen]))
	}
	return s
}

// sanitizeList trims entries, drops empties, dedupes case-insensitively
// keeping the first spelling, and caps the result.
func sanitizeList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = clampString(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) == maxListLen {
			break
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// canonicalType maps a free-text business label onto the taxonomy by
// substring match, first hit wins.
func canonicalType(label string) (BusinessType, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	if l == "" {
		return "", false
	}
	for _, syn := range typeSynonyms {
		if strings.Contains(l, syn.Keyword) {
			return syn.Type, true
		}
	}
	return "", false
}

// typeFromServices guesses a business type from the offerings themselves.
func typeFromServices(services []string) (BusinessType, bool) {
	joined := strings.ToLower(strings.Join(services, " "))
	if joined == "" {
		return "", false
	}
	for _, kw := range serviceKeywords {
		if strings.Contains(joined, kw.Keyword) {
			return kw.Type, true
		}
	}
	return "", false
}

var toneSynonyms = map[string]string{
	"casual":         "friendly",
	"conversational": "friendly",
	"relaxed":        "friendly",
	"informal":       "friendly",
	"warm":           "friendly",
	"formal":         "professional",
	"corporate":      "professional",
	"businesslike":   "professional",
	"fun":            "playful",
	"humorous":       "playful",
	"witty":          "playful",
	"premium":        "luxury",
	"upscale":        "luxury",
	"sophisticated":  "luxury",
}

// canonicalTone lowercases the tone and folds common synonyms onto the
// vocabulary the downstream validators understand.
func canonicalTone(tone string) string {
	t := strings.ToLower(strings.TrimSpace(tone))
	if mapped, ok := toneSynonyms[t]; ok {
		return mapped
	}
	return t
}

// canonicalLocation title-cases each comma segment, keeping short all-caps
// tokens such as country codes untouched.
func canonicalLocation(loc string) string {
	segs := strings.Split(loc, ",")
	out := make([]string, 0, len(segs))
	for _, seg := range segs {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if len(seg) <= 3 && seg == strings.ToUpper(seg) {
			out = append(out, seg)
			continue
		}
		out = append(out, cases.Title(language.English).String(seg))
	}
	return strings.Join(out, ", ")
}
