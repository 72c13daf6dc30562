package brand

// industryDefaults is the standards row consulted when a profile field is
// missing and the business type is known.
type industryDefaults struct {
	Placeholder string
	Services    []string
	Audience    string
	Voice       string
	Tone        string
	Palette     BrandColors
	KeyFeatures []string
}

var industryTable = map[BusinessType]industryDefaults{
	TypeRestaurant: {
		Placeholder: "Your Restaurant",
		Services:    []string{"Dine-in", "Takeout", "Catering"},
		Audience:    "local food lovers and families",
		Voice:       "warm and inviting",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#C0392B", Secondary: "#E67E22", Background: "#FDF6EC", Accent: "#27AE60"},
		KeyFeatures: []string{"Fresh ingredients", "Cozy atmosphere", "Quick service"},
	},
	TypeHealthcare: {
		Placeholder: "Your Healthcare Practice",
		Services:    []string{"Consultations", "Preventive care", "Patient support"},
		Audience:    "patients and caregivers seeking trusted care",
		Voice:       "caring and professional",
		Tone:        "professional",
		Palette:     BrandColors{Primary: "#2471A3", Secondary: "#5DADE2", Background: "#F4F9FD", Accent: "#48C9B0"},
		KeyFeatures: []string{"Experienced staff", "Modern facilities", "Patient-first care"},
	},
	TypeFitness: {
		Placeholder: "Your Fitness Studio",
		Services:    []string{"Personal training", "Group classes", "Memberships"},
		Audience:    "health-conscious people of all fitness levels",
		Voice:       "energetic and motivating",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#E74C3C", Secondary: "#F39C12", Background: "#FFFFFF", Accent: "#2ECC71"},
		KeyFeatures: []string{"Certified trainers", "Flexible schedules", "Supportive community"},
	},
	TypeFinance: {
		Placeholder: "Your Financial Services Firm",
		Services:    []string{"Financial planning", "Investment advice", "Tax services"},
		Audience:    "individuals and businesses planning their financial future",
		Voice:       "trustworthy and knowledgeable",
		Tone:        "professional",
		Palette:     BrandColors{Primary: "#1A5276", Secondary: "#2E86C1", Background: "#FBFCFC", Accent: "#F1C40F"},
		KeyFeatures: []string{"Transparent fees", "Personalized advice", "Proven track record"},
	},
	TypeTechnology: {
		Placeholder: "Your Tech Company",
		Services:    []string{"Software development", "Consulting", "Support"},
		Audience:    "businesses looking to modernize their operations",
		Voice:       "innovative and clear",
		Tone:        "professional",
		Palette:     BrandColors{Primary: "#2C3E50", Secondary: "#3498DB", Background: "#FFFFFF", Accent: "#9B59B6"},
		KeyFeatures: []string{"Cutting-edge tools", "Scalable solutions", "Responsive support"},
	},
	TypeRetail: {
		Placeholder: "Your Store",
		Services:    []string{"In-store shopping", "Online orders", "Gift cards"},
		Audience:    "shoppers looking for quality and value",
		Voice:       "helpful and upbeat",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#8E44AD", Secondary: "#E91E63", Background: "#FFFFFF", Accent: "#F39C12"},
		KeyFeatures: []string{"Curated selection", "Fair prices", "Easy returns"},
	},
	TypeBeauty: {
		Placeholder: "Your Beauty Studio",
		Services:    []string{"Styling", "Skincare treatments", "Consultations"},
		Audience:    "clients who want to look and feel their best",
		Voice:       "elegant and welcoming",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#D81B60", Secondary: "#F8BBD0", Background: "#FFF8F9", Accent: "#AD1457"},
		KeyFeatures: []string{"Skilled stylists", "Premium products", "Relaxing experience"},
	},
	TypeEducation: {
		Placeholder: "Your Learning Center",
		Services:    []string{"Courses", "Tutoring", "Workshops"},
		Audience:    "students and lifelong learners",
		Voice:       "encouraging and clear",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#1E8449", Secondary: "#52BE80", Background: "#FEFFFE", Accent: "#F4D03F"},
		KeyFeatures: []string{"Expert instructors", "Small class sizes", "Practical curriculum"},
	},
	TypeRealEstate: {
		Placeholder: "Your Real Estate Agency",
		Services:    []string{"Buying", "Selling", "Property management"},
		Audience:    "buyers, sellers, and property investors",
		Voice:       "confident and personable",
		Tone:        "professional",
		Palette:     BrandColors{Primary: "#154360", Secondary: "#2980B9", Background: "#FDFEFE", Accent: "#D4AC0D"},
		KeyFeatures: []string{"Local market expertise", "Honest guidance", "Full-service support"},
	},
	TypeAutomotive: {
		Placeholder: "Your Auto Shop",
		Services:    []string{"Repairs", "Maintenance", "Inspections"},
		Audience:    "drivers who want reliable service",
		Voice:       "straightforward and dependable",
		Tone:        "friendly",
		Palette:     BrandColors{Primary: "#212F3D", Secondary: "#E74C3C", Background: "#F8F9F9", Accent: "#F39C12"},
		KeyFeatures: []string{"Certified mechanics", "Upfront pricing", "Fast turnaround"},
	},
	TypeGeneral: {
		Placeholder: "Your Business",
		Services:    []string{"Products", "Services", "Customer support"},
		Audience:    "local customers",
		Voice:       "professional and approachable",
		Tone:        "professional",
		Palette:     BrandColors{Primary: "#34495E", Secondary: "#5D6D7E", Background: "#FFFFFF", Accent: "#3498DB"},
		KeyFeatures: []string{"Quality service", "Customer focus", "Fair pricing"},
	},
}

// defaultsFor never misses; unknown types fall back to the general row.
func defaultsFor(t BusinessType) industryDefaults {
	if d, ok := industryTable[t]; ok {
		return d
	}
	return industryTable[TypeGeneral]
}

// typeSynonyms maps free-text business labels onto the taxonomy. Matching is
// by substring over the lowercased label, first hit wins, so the list is
// ordered most-specific first.
var typeSynonyms = []struct {
	Keyword string
	Type    BusinessType
}{
	{"real estate", TypeRealEstate},
	{"realtor", TypeRealEstate},
	{"property", TypeRealEstate},
	{"restaurant", TypeRestaurant},
	{"cafe", TypeRestaurant},
	{"coffee", TypeRestaurant},
	{"bakery", TypeRestaurant},
	{"bistro", TypeRestaurant},
	{"pizzeria", TypeRestaurant},
	{"diner", TypeRestaurant},
	{"grill", TypeRestaurant},
	{"food", TypeRestaurant},
	{"catering", TypeRestaurant},
	{"clinic", TypeHealthcare},
	{"hospital", TypeHealthcare},
	{"medical", TypeHealthcare},
	{"dental", TypeHealthcare},
	{"healthcare", TypeHealthcare},
	{"health", TypeHealthcare},
	{"pharmacy", TypeHealthcare},
	{"therapy", TypeHealthcare},
	{"wellness", TypeHealthcare},
	{"gym", TypeFitness},
	{"fitness", TypeFitness},
	{"yoga", TypeFitness},
	{"pilates", TypeFitness},
	{"crossfit", TypeFitness},
	{"bank", TypeFinance},
	{"finance", TypeFinance},
	{"financial", TypeFinance},
	{"accounting", TypeFinance},
	{"insurance", TypeFinance},
	{"investment", TypeFinance},
	{"software", TypeTechnology},
	{"tech", TypeTechnology},
	{"saas", TypeTechnology},
	{"startup", TypeTechnology},
	{"it service", TypeTechnology},
	{"digital", TypeTechnology},
	{"automation", TypeTechnology},
	{"salon", TypeBeauty},
	{"spa", TypeBeauty},
	{"beauty", TypeBeauty},
	{"barber", TypeBeauty},
	{"cosmetic", TypeBeauty},
	{"nail", TypeBeauty},
	{"automotive", TypeAutomotive},
	{"auto", TypeAutomotive},
	{"mechanic", TypeAutomotive},
	{"garage", TypeAutomotive},
	{"dealership", TypeAutomotive},
	{"school", TypeEducation},
	{"academy", TypeEducation},
	{"tutoring", TypeEducation},
	{"education", TypeEducation},
	{"training", TypeEducation},
	{"course", TypeEducation},
	{"boutique", TypeRetail},
	{"retail", TypeRetail},
	{"ecommerce", TypeRetail},
	{"e-commerce", TypeRetail},
	{"shop", TypeRetail},
	{"store", TypeRetail},
	{"general business", TypeGeneral},
}

// serviceKeywords lets the engine guess a business type from the services a
// caller listed when the type itself is missing.
var serviceKeywords = []struct {
	Keyword string
	Type    BusinessType
}{
	{"dine", TypeRestaurant},
	{"menu", TypeRestaurant},
	{"takeout", TypeRestaurant},
	{"delivery", TypeRestaurant},
	{"catering", TypeRestaurant},
	{"pizza", TypeRestaurant},
	{"consultation", TypeHealthcare},
	{"checkup", TypeHealthcare},
	{"treatment", TypeHealthcare},
	{"patient", TypeHealthcare},
	{"training", TypeFitness},
	{"workout", TypeFitness},
	{"class", TypeFitness},
	{"membership", TypeFitness},
	{"tax", TypeFinance},
	{"loan", TypeFinance},
	{"investment", TypeFinance},
	{"bookkeeping", TypeFinance},
	{"development", TypeTechnology},
	{"software", TypeTechnology},
	{"hosting", TypeTechnology},
	{"integration", TypeTechnology},
	{"shipping", TypeRetail},
	{"gift", TypeRetail},
	{"haircut", TypeBeauty},
	{"styling", TypeBeauty},
	{"manicure", TypeBeauty},
	{"facial", TypeBeauty},
	{"tutoring", TypeEducation},
	{"course", TypeEducation},
	{"workshop", TypeEducation},
	{"repair", TypeAutomotive},
	{"oil change", TypeAutomotive},
	{"inspection", TypeAutomotive},
}
