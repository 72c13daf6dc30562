// Package quality scores generated content against the brand profile and
// drives the accept/retry/fallback loop around the external generator. All
// scoring is lexical and deterministic so the same candidate always gets the
// same verdict.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"brandforge/internal/domain/brand"
	"brandforge/internal/domain/cultural"
)

var ctaRe = regexp.MustCompile(`(?i)\b(` + strings.Join(ctaVerbs, "|") + `)\b`)

// Evaluate scores candidate text on the six quality dimensions. Issues list
// what is wrong; recommendations suggest what to do about it.
func Evaluate(text string, p brand.NormalizedProfile, cctx cultural.Context) Score {
	s := Score{
		IndustryAppropriate: 100,
		ToneConsistency:     100,
		TerminologyAccuracy: 100,
		ContentStructure:    100,
		CulturalRelevance:   100,
		BrandAlignment:      100,
	}
	lower := strings.ToLower(text)

	scoreIndustry(&s, lower, p.BusinessType)
	scoreTone(&s, lower, p.WritingTone)
	scoreTerminology(&s, lower, p.BusinessType)
	scoreStructure(&s, text)
	scoreCulture(&s, lower, cctx)
	scoreBrand(&s, lower, p)

	s.IndustryAppropriate = clampScore(s.IndustryAppropriate)
	s.ToneConsistency = clampScore(s.ToneConsistency)
	s.TerminologyAccuracy = clampScore(s.TerminologyAccuracy)
	s.ContentStructure = clampScore(s.ContentStructure)
	s.CulturalRelevance = clampScore(s.CulturalRelevance)
	s.BrandAlignment = clampScore(s.BrandAlignment)

	sum := s.IndustryAppropriate + s.ToneConsistency + s.TerminologyAccuracy +
		s.ContentStructure + s.CulturalRelevance + s.BrandAlignment
	s.Overall = int(math.Round(float64(sum) / 6))
	return s
}

func scoreIndustry(s *Score, lower string, t brand.BusinessType) {
	required := requiredTerms[t]
	if len(required) == 0 {
		required = requiredTerms[brand.TypeGeneral]
	}
	matched := 0
	for _, term := range required {
		if strings.Contains(lower, term) {
			matched++
		}
	}
	if float64(matched) < 0.3*float64(len(required)) {
		s.IndustryAppropriate -= 30
		s.Issues = append(s.Issues, fmt.Sprintf("industry vocabulary is thin for a %s post", strings.ToLower(string(t))))
		s.Recommendations = append(s.Recommendations,
			fmt.Sprintf("work in terms readers expect, such as %s", strings.Join(required[:min(3, len(required))], ", ")))
	}
	for _, term := range inappropriateTerms[t] {
		if strings.Contains(lower, term) {
			s.IndustryAppropriate -= 20
			s.Issues = append(s.Issues, fmt.Sprintf("%q reads out of place for a %s business", term, strings.ToLower(string(t))))
		}
	}
}

func scoreTone(s *Score, lower, tone string) {
	ind, ok := toneTable[tone]
	if !ok {
		return
	}
	positives := 0
	for _, w := range ind.Positive {
		if strings.Contains(lower, w) {
			positives++
		}
	}
	if positives == 0 {
		s.ToneConsistency -= 20
		s.Issues = append(s.Issues, fmt.Sprintf("tone drifts from the expected %s voice", tone))
		s.Recommendations = append(s.Recommendations,
			fmt.Sprintf("use %s words such as %s", tone, strings.Join(ind.Positive[:min(3, len(ind.Positive))], ", ")))
	}
	for _, w := range ind.Negative {
		if strings.Contains(lower, w) {
			s.ToneConsistency -= 15
			s.Issues = append(s.Issues, fmt.Sprintf("%q clashes with the %s tone", w, tone))
		}
	}
}

func scoreTerminology(s *Score, lower string, t brand.BusinessType) {
	for _, fix := range wrongTerms[t] {
		if strings.Contains(lower, fix.Wrong) {
			s.TerminologyAccuracy -= 15
			s.Issues = append(s.Issues, fmt.Sprintf("say %q rather than %q in %s content", fix.Right, fix.Wrong, strings.ToLower(string(t))))
		}
	}
}

func scoreStructure(s *Score, text string) {
	n := len([]rune(strings.TrimSpace(text)))
	if n < 50 {
		s.ContentStructure -= 30
		s.Issues = append(s.Issues, "content runs under 50 characters, too short for a post")
	}
	if n > 500 {
		s.ContentStructure -= 20
		s.Issues = append(s.Issues, "content runs past 500 characters, trim it down")
	}
	if !ctaRe.MatchString(text) {
		s.ContentStructure -= 25
		s.Issues = append(s.Issues, "no call to action verb such as visit, book, or call")
		s.Recommendations = append(s.Recommendations, "close with an invitation, for example \"Visit us today\"")
	}
}

// scoreCulture is a soft signal: the deduction is small and the nudge lands
// in recommendations rather than issues.
func scoreCulture(s *Score, lower string, cctx cultural.Context) {
	if cctx.Country == "" || cctx.Country == "Unknown" {
		return
	}
	keywords, ok := culturalKeywords[cctx.Country]
	if !ok {
		keywords = []string{strings.ToLower(cctx.Country), "local", "community"}
	}
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return
		}
	}
	s.CulturalRelevance -= 15
	s.Recommendations = append(s.Recommendations,
		fmt.Sprintf("add a local touch for %s, for example mention %q", cctx.Country, keywords[0]))
}

func scoreBrand(s *Score, lower string, p brand.NormalizedProfile) {
	if p.BusinessName != "" && !strings.Contains(lower, strings.ToLower(p.BusinessName)) {
		s.BrandAlignment -= 20
		s.Issues = append(s.Issues, fmt.Sprintf("the business name %q never appears", p.BusinessName))
		s.Recommendations = append(s.Recommendations, fmt.Sprintf("mention %s by name at least once", p.BusinessName))
	}
	if len(p.Services) > 0 {
		for _, svc := range p.Services {
			if strings.Contains(lower, strings.ToLower(svc)) {
				return
			}
		}
		s.BrandAlignment -= 15
		s.Issues = append(s.Issues, "none of the services are mentioned")
	}
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
