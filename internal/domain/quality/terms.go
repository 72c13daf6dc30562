package quality

import "brandforge/internal/domain/brand"

// requiredTerms is the vocabulary a reader expects from each industry. The
// scorer checks what share of these the content touches.
var requiredTerms = map[brand.BusinessType][]string{
	brand.TypeRestaurant: {"menu", "dish", "flavor", "fresh", "taste", "chef", "meal", "dine", "food"},
	brand.TypeHealthcare: {"care", "health", "patient", "treatment", "wellness", "appointment"},
	brand.TypeFitness:    {"workout", "training", "fitness", "strength", "class", "coach", "member"},
	brand.TypeFinance:    {"plan", "invest", "financial", "savings", "advice", "tax", "wealth"},
	brand.TypeTechnology: {"software", "platform", "solution", "build", "launch", "digital", "tech"},
	brand.TypeRetail:     {"shop", "collection", "style", "quality", "store", "deal", "arrival"},
	brand.TypeBeauty:     {"style", "glow", "skin", "hair", "treatment", "beauty", "look"},
	brand.TypeEducation:  {"learn", "course", "skill", "class", "student", "lesson"},
	brand.TypeRealEstate: {"home", "property", "listing", "market", "neighborhood", "agent"},
	brand.TypeAutomotive: {"car", "service", "repair", "drive", "vehicle", "engine"},
	brand.TypeGeneral:    {"service", "quality", "local", "team"},
}

// inappropriateTerms belong to a different domain and read as a generation
// error when they show up, each match costs a fixed deduction.
var inappropriateTerms = map[brand.BusinessType][]string{
	brand.TypeRestaurant: {"prescription", "diagnosis", "mortgage rate"},
	brand.TypeHealthcare: {"tasty", "menu", "clearance sale"},
	brand.TypeFitness:    {"prescription", "mortgage rate"},
	brand.TypeFinance:    {"guaranteed returns", "get rich", "delicious"},
	brand.TypeTechnology: {"prescription", "side effects"},
	brand.TypeRetail:     {"diagnosis", "interest rate"},
	brand.TypeBeauty:     {"diagnosis", "mortgage rate"},
	brand.TypeEducation:  {"prescription", "clearance sale"},
	brand.TypeRealEstate: {"prescription", "dosage"},
	brand.TypeAutomotive: {"prescription", "dosage"},
}

// termFix pairs a term that is wrong for the industry with the word the
// industry actually uses.
type termFix struct {
	Wrong string
	Right string
}

// wrongTerms covers industries with strict naming conventions. Absent types
// simply skip the terminology check.
var wrongTerms = map[brand.BusinessType][]termFix{
	brand.TypeHealthcare: {
		{Wrong: "customer", Right: "patient"},
		{Wrong: "shopper", Right: "patient"},
		{Wrong: "bargain", Right: "affordable care"},
	},
	brand.TypeRestaurant: {
		{Wrong: "patient", Right: "guest"},
		{Wrong: "user", Right: "guest"},
	},
	brand.TypeFitness: {
		{Wrong: "patient", Right: "member"},
	},
	brand.TypeFinance: {
		{Wrong: "patient", Right: "client"},
		{Wrong: "shopper", Right: "client"},
	},
	brand.TypeBeauty: {
		{Wrong: "patient", Right: "client"},
	},
	brand.TypeRealEstate: {
		{Wrong: "user", Right: "client"},
	},
}

// toneIndicators are the positive and negative signal words for each
// expected writing tone.
type toneIndicators struct {
	Positive []string
	Negative []string
}

var toneTable = map[string]toneIndicators{
	"professional": {
		Positive: []string{"expert", "professional", "trusted", "reliable", "proven", "dedicated", "experienced"},
		Negative: []string{"lol", "omg", "crazy", "insane", "epic"},
	},
	"friendly": {
		Positive: []string{"welcome", "love", "enjoy", "happy", "friendly", "together", "warm", "join", "family"},
		Negative: []string{"utilize", "leverage", "synergy", "aforementioned", "heretofore"},
	},
	"luxury": {
		Positive: []string{"exclusive", "premium", "luxurious", "bespoke", "refined", "indulgent", "signature"},
		Negative: []string{"cheap", "discount", "bargain", "budget"},
	},
	"playful": {
		Positive: []string{"fun", "play", "exciting", "vibrant", "bold", "wow"},
		Negative: []string{"pursuant", "corporate", "formal"},
	},
}

// ctaVerbs are the verbs that make a post actionable.
var ctaVerbs = []string{"call", "visit", "book", "contact", "learn", "discover", "try", "get", "start", "join"}

// culturalKeywords give content a local anchor for the resolved country.
var culturalKeywords = map[string][]string{
	"Kenya":          {"kenya", "nairobi", "community", "karibu", "local"},
	"Italy":          {"italy", "italian", "rome", "tradition", "authentic"},
	"United States":  {"local", "community", "neighborhood"},
	"Japan":          {"japan", "japanese", "tokyo", "seasonal"},
	"Germany":        {"germany", "german", "berlin", "quality"},
	"France":         {"france", "french", "paris", "artisan"},
	"United Kingdom": {"british", "london", "local"},
	"India":          {"india", "indian", "festival", "family"},
	"Brazil":         {"brazil", "brazilian", "community"},
	"Mexico":         {"mexico", "mexican", "familia", "family"},
	"Nigeria":        {"nigeria", "nigerian", "lagos", "community"},
	"China":          {"china", "chinese", "tradition"},
}
