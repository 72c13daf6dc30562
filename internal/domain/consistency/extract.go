package consistency

import (
	"regexp"
	"strings"
)

// designTraits is what keyword extraction recovers from a free-text design
// brief. The brief is prose from another model, so extraction is best-effort.
type designTraits struct {
	Styles      []string
	ColorScheme []string
	DesignType  string
}

var hexRe = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)

var styleWords = []string{
	"professional", "clean", "formal", "corporate",
	"friendly", "warm", "welcoming", "inviting", "casual",
	"modern", "innovative", "sleek", "minimal",
	"vibrant", "energetic", "bold", "dynamic",
	"elegant", "refined", "luxurious", "playful",
}

var colorWords = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"black", "white", "grey", "gray", "gold", "navy", "teal", "brown",
}

var designTypeWords = []string{"post", "banner", "story", "flyer", "poster", "graphic", "logo"}

// extractDesign scans the brief for style vocabulary, color references
// (hex codes and color words), and the kind of asset being described.
func extractDesign(designPrompt string) designTraits {
	lower := strings.ToLower(designPrompt)

	var t designTraits
	for _, w := range styleWords {
		if strings.Contains(lower, w) {
			t.Styles = append(t.Styles, w)
		}
	}
	t.ColorScheme = append(t.ColorScheme, hexRe.FindAllString(designPrompt, -1)...)
	for _, w := range colorWords {
		if strings.Contains(lower, w) {
			t.ColorScheme = append(t.ColorScheme, w)
		}
	}
	for _, w := range designTypeWords {
		if strings.Contains(lower, w) {
			t.DesignType = w
			break
		}
	}
	return t
}

// toneClasses groups tone and style vocabulary into the four canonical
// classes the compatibility check works over.
var toneClasses = map[string][]string{
	"professional": {"professional", "formal", "corporate", "expert", "clean"},
	"friendly":     {"friendly", "warm", "welcoming", "inviting", "casual"},
	"modern":       {"modern", "innovative", "sleek", "minimal"},
	"vibrant":      {"vibrant", "energetic", "bold", "dynamic"},
}

// classOrder keeps classification deterministic.
var classOrder = []string{"professional", "friendly", "modern", "vibrant"}

// classify maps free text onto the first canonical tone class any of its
// words belong to, or "" when nothing matches.
func classify(text string) string {
	lower := strings.ToLower(text)
	for _, class := range classOrder {
		for _, w := range toneClasses[class] {
			if strings.Contains(lower, w) {
				return class
			}
		}
	}
	return ""
}
