package cultural

// countryRow pairs the lookup keys (country names, major cities, common
// abbreviations) with the static cultural record for that market. Rows are
// scanned in order and the first hit wins, so disambiguating keys such as
// "new mexico" and "indiana" sit on the US row above the country rows they
// would otherwise shadow.
type countryRow struct {
	Match []string
	Ctx   Context
}

var countryTable = []countryRow{
	{
		Match: []string{"united states", "usa", "new mexico", "indiana", "indianapolis", "new york", "nyc", "los angeles", "chicago", "san francisco", "miami", "texas", "california"},
		Ctx: Context{
			Country:            "United States",
			Region:             "North America",
			PrimaryLanguage:    "English",
			SecondaryLanguages: []string{"Spanish"},
			CommunicationStyle: "direct and results-oriented",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"blue", "red", "white"},
				Meanings:  map[string]string{"blue": "trust and reliability", "red": "energy and urgency", "green": "growth and money"},
			},
			Currency:          Currency{Symbol: "$", Code: "USD", Position: "prefix"},
			TimeFormat:        "12h",
			ContentTone:       "confident and direct",
			TrustBuilders:     []string{"money-back guarantees", "verified customer reviews"},
			MarketingApproach: "benefit-driven with clear calls to action",
		},
	},
	{
		Match: []string{"kenya", "nairobi", "mombasa", "kisumu"},
		Ctx: Context{
			Country:            "Kenya",
			Region:             "East Africa",
			PrimaryLanguage:    "English",
			SecondaryLanguages: []string{"Swahili"},
			CommunicationStyle: "warm and community-focused",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"green", "red", "black"},
				Meanings:  map[string]string{"green": "land and renewal", "red": "vitality", "black": "the people"},
			},
			Currency:          Currency{Symbol: "KSh", Code: "KES", Position: "prefix"},
			TimeFormat:        "12h",
			ContentTone:       "warm and respectful",
			TrustBuilders:     []string{"community testimonials", "local presence", "M-Pesa payment options"},
			MarketingApproach: "community-centered storytelling",
		},
	},
	{
		Match: []string{"italy", "rome", "milan", "florence", "venice", "naples"},
		Ctx: Context{
			Country:            "Italy",
			Region:             "Southern Europe",
			PrimaryLanguage:    "Italian",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "expressive and relationship-driven",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"green", "red", "gold"},
				Avoided:   []string{"purple"},
				Meanings:  map[string]string{"green": "freshness", "red": "passion and tradition", "purple": "mourning"},
			},
			Currency:          Currency{Symbol: "€", Code: "EUR", Position: "suffix"},
			TimeFormat:        "24h",
			ContentTone:       "passionate and expressive",
			TrustBuilders:     []string{"family heritage", "artisan craftsmanship"},
			MarketingApproach: "emotional storytelling around quality and tradition",
		},
	},
	{
		Match: []string{"japan", "tokyo", "osaka", "kyoto"},
		Ctx: Context{
			Country:            "Japan",
			Region:             "East Asia",
			PrimaryLanguage:    "Japanese",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "polite and indirect",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"white", "red", "pastel tones"},
				Meanings:  map[string]string{"white": "purity", "red": "good fortune"},
			},
			Currency:          Currency{Symbol: "¥", Code: "JPY", Position: "prefix"},
			TimeFormat:        "24h",
			ContentTone:       "respectful and precise",
			TrustBuilders:     []string{"quality certifications", "long-standing reputation"},
			MarketingApproach: "detail-oriented with understated elegance",
		},
	},
	{
		Match: []string{"germany", "berlin", "munich", "hamburg", "frankfurt"},
		Ctx: Context{
			Country:            "Germany",
			Region:             "Western Europe",
			PrimaryLanguage:    "German",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "precise and straightforward",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"blue", "grey", "black"},
				Meanings:  map[string]string{"blue": "competence", "black": "quality"},
			},
			Currency:          Currency{Symbol: "€", Code: "EUR", Position: "suffix"},
			TimeFormat:        "24h",
			ContentTone:       "clear and factual",
			TrustBuilders:     []string{"technical certifications", "detailed warranties"},
			MarketingApproach: "fact-based with technical depth",
		},
	},
	{
		Match: []string{"france", "paris", "lyon", "marseille"},
		Ctx: Context{
			Country:            "France",
			Region:             "Western Europe",
			PrimaryLanguage:    "French",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "articulate and formal",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"blue", "white", "gold"},
				Meanings:  map[string]string{"blue": "elegance", "gold": "prestige"},
			},
			Currency:          Currency{Symbol: "€", Code: "EUR", Position: "suffix"},
			TimeFormat:        "24h",
			ContentTone:       "refined and persuasive",
			TrustBuilders:     []string{"heritage", "critical acclaim"},
			MarketingApproach: "aspirational and aesthetic",
		},
	},
	{
		Match: []string{"united kingdom", "uk", "london", "england", "scotland", "manchester", "birmingham"},
		Ctx: Context{
			Country:            "United Kingdom",
			Region:             "Western Europe",
			PrimaryLanguage:    "English",
			CommunicationStyle: "polite and understated",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"navy", "red", "white"},
				Meanings:  map[string]string{"navy": "tradition", "red": "confidence"},
			},
			Currency:          Currency{Symbol: "£", Code: "GBP", Position: "prefix"},
			TimeFormat:        "12h",
			ContentTone:       "polished and courteous",
			TrustBuilders:     []string{"industry accreditation", "established heritage"},
			MarketingApproach: "witty and understated",
		},
	},
	{
		Match: []string{"india", "mumbai", "delhi", "bangalore", "chennai", "hyderabad"},
		Ctx: Context{
			Country:            "India",
			Region:             "South Asia",
			PrimaryLanguage:    "Hindi",
			SecondaryLanguages: []string{"English", "Tamil", "Telugu"},
			CommunicationStyle: "warm and family-oriented",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"saffron", "gold", "red", "green"},
				Avoided:   []string{"black"},
				Meanings:  map[string]string{"saffron": "auspiciousness", "red": "celebration", "black": "inauspiciousness"},
			},
			Currency:          Currency{Symbol: "₹", Code: "INR", Position: "prefix"},
			TimeFormat:        "12h",
			ContentTone:       "enthusiastic and respectful",
			TrustBuilders:     []string{"family recommendations", "value guarantees"},
			MarketingApproach: "festive, value-conscious messaging",
		},
	},
	{
		Match: []string{"brazil", "sao paulo", "são paulo", "rio de janeiro", "brasilia"},
		Ctx: Context{
			Country:            "Brazil",
			Region:             "South America",
			PrimaryLanguage:    "Portuguese",
			SecondaryLanguages: []string{"Spanish"},
			CommunicationStyle: "lively and personal",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"green", "yellow", "blue"},
				Avoided:   []string{"purple"},
				Meanings:  map[string]string{"green": "nature", "yellow": "optimism", "purple": "mourning"},
			},
			Currency:          Currency{Symbol: "R$", Code: "BRL", Position: "prefix"},
			TimeFormat:        "24h",
			ContentTone:       "upbeat and friendly",
			TrustBuilders:     []string{"social proof", "personal relationships"},
			MarketingApproach: "energetic social-first campaigns",
		},
	},
	{
		Match: []string{"mexico", "guadalajara", "monterrey", "cancun"},
		Ctx: Context{
			Country:            "Mexico",
			Region:             "North America",
			PrimaryLanguage:    "Spanish",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "warm and family-focused",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"green", "red", "vibrant tones"},
				Avoided:   []string{"yellow"},
				Meanings:  map[string]string{"green": "independence", "yellow": "mourning"},
			},
			Currency:          Currency{Symbol: "$", Code: "MXN", Position: "prefix"},
			TimeFormat:        "24h",
			ContentTone:       "warm and personal",
			TrustBuilders:     []string{"family references", "community roots"},
			MarketingApproach: "warm family-oriented narratives",
		},
	},
	{
		Match: []string{"nigeria", "lagos", "abuja", "port harcourt"},
		Ctx: Context{
			Country:            "Nigeria",
			Region:             "West Africa",
			PrimaryLanguage:    "English",
			SecondaryLanguages: []string{"Yoruba", "Hausa", "Igbo"},
			CommunicationStyle: "energetic and community-focused",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"green", "white"},
				Meanings:  map[string]string{"green": "prosperity", "white": "peace"},
			},
			Currency:          Currency{Symbol: "₦", Code: "NGN", Position: "prefix"},
			TimeFormat:        "12h",
			ContentTone:       "energetic and optimistic",
			TrustBuilders:     []string{"word of mouth", "visible success stories"},
			MarketingApproach: "bold aspirational messaging",
		},
	},
	{
		Match: []string{"china", "beijing", "shanghai", "shenzhen", "guangzhou"},
		Ctx: Context{
			Country:            "China",
			Region:             "East Asia",
			PrimaryLanguage:    "Mandarin",
			SecondaryLanguages: []string{"English"},
			CommunicationStyle: "respectful and harmonious",
			ColorPreferences: ColorPreferences{
				Preferred: []string{"red", "gold"},
				Avoided:   []string{"white"},
				Meanings:  map[string]string{"red": "luck and celebration", "gold": "wealth", "white": "mourning"},
			},
			Currency:          Currency{Symbol: "¥", Code: "CNY", Position: "prefix"},
			TimeFormat:        "24h",
			ContentTone:       "respectful and aspirational",
			TrustBuilders:     []string{"brand reputation", "official endorsements"},
			MarketingApproach: "prestige and social proof",
		},
	},
}
