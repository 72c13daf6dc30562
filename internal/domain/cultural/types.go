package cultural

// ColorPreferences captures how a market reads color: what lands well, what
// to avoid, and what individual colors signal there.
type ColorPreferences struct {
	Preferred []string          `json:"preferred,omitempty"`
	Avoided   []string          `json:"avoided,omitempty"`
	Meanings  map[string]string `json:"meanings,omitempty"`
}

// Currency describes how prices are written in a market.
type Currency struct {
	Symbol   string `json:"symbol"`
	Code     string `json:"code"`
	Position string `json:"position"` // prefix or suffix
}

// Context is the full set of location-derived rules applied to generated
// content. Resolved once per request and treated as immutable downstream.
type Context struct {
	Country            string           `json:"country"`
	Region             string           `json:"region"`
	PrimaryLanguage    string           `json:"primaryLanguage"`
	SecondaryLanguages []string         `json:"secondaryLanguages,omitempty"`
	CommunicationStyle string           `json:"communicationStyle"`
	ColorPreferences   ColorPreferences `json:"colorPreferences"`
	Currency           Currency         `json:"currency"`
	TimeFormat         string           `json:"timeFormat"` // 12h or 24h
	ContentTone        string           `json:"contentTone"`
	TrustBuilders      []string         `json:"trustBuilders,omitempty"`
	MarketingApproach  string           `json:"marketingApproach"`
}

// clone deep-copies the context so per-request adjustments never leak back
// into the shared table.
func (c Context) clone() Context {
	out := c
	out.SecondaryLanguages = append([]string(nil), c.SecondaryLanguages...)
	out.ColorPreferences.Preferred = append([]string(nil), c.ColorPreferences.Preferred...)
	out.ColorPreferences.Avoided = append([]string(nil), c.ColorPreferences.Avoided...)
	out.TrustBuilders = append([]string(nil), c.TrustBuilders...)
	if c.ColorPreferences.Meanings != nil {
		m := make(map[string]string, len(c.ColorPreferences.Meanings))
		for k, v := range c.ColorPreferences.Meanings {
			m[k] = v
		}
		out.ColorPreferences.Meanings = m
	}
	return out
}

// Appropriateness is the result of checking a piece of content against a
// cultural context. Issues and Suggestions are index-aligned.
type Appropriateness struct {
	IsAppropriate bool     `json:"isAppropriate"`
	Issues        []string `json:"issues,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}
