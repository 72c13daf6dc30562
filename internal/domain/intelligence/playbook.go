package intelligence

import "brandforge/internal/domain/brand"

// playbook is the per-industry messaging kit. Value templates may reference
// {name}, {service}, {feature}, and {audience}, filled at synthesis time.
type playbook struct {
	Hooks     []string
	Pains     []string
	ValueTmpl []string
	Triggers  []string
	Insights  []string
	Edges     []string
	CTAs      []string
}

var playbooks = map[brand.BusinessType]playbook{
	brand.TypeRestaurant: {
		Hooks: []string{
			"What's cooking today?",
			"Your table is waiting",
			"Taste the difference fresh makes",
		},
		Pains: []string{
			"tired of the same takeout rotation",
			"no time to cook a proper meal",
			"hard to find food the whole family agrees on",
		},
		ValueTmpl: []string{
			"{name} brings {service} made with care to {audience}",
			"Enjoy {feature} every time you visit",
		},
		Triggers: []string{"comfort", "craving", "togetherness"},
		Insights: []string{
			"food photos drive the highest engagement on social feeds",
			"weekday lunch posts convert best before 11am",
		},
		Edges: []string{"fresh daily ingredients", "recipes you won't find elsewhere"},
		CTAs:  []string{"Book your table today", "Order now for tonight", "Visit us this weekend"},
	},
	brand.TypeHealthcare: {
		Hooks: []string{
			"Your health can't wait",
			"Care that puts you first",
			"Small checkups prevent big problems",
		},
		Pains: []string{
			"long waits for appointments",
			"feeling rushed through visits",
			"confusing treatment options",
		},
		ValueTmpl: []string{
			"{name} offers {service} tailored to {audience}",
			"Patients choose us for {feature}",
		},
		Triggers: []string{"peace of mind", "safety", "trust"},
		Insights: []string{
			"patients research providers online before their first call",
			"educational content builds more trust than promotions",
		},
		Edges: []string{"experienced practitioners", "same-week appointments"},
		CTAs:  []string{"Book a consultation", "Call us today", "Learn more about our care"},
	},
	brand.TypeFitness: {
		Hooks: []string{
			"Stronger starts here",
			"Your only competition is yesterday",
			"Summer bodies are built in winter",
		},
		Pains: []string{
			"gym routines that stop working",
			"no accountability to keep showing up",
			"intimidating big-box gyms",
		},
		ValueTmpl: []string{
			"{name} delivers {service} built around {audience}",
			"Members stay for {feature}",
		},
		Triggers: []string{"confidence", "energy", "achievement"},
		Insights: []string{
			"transformation stories outperform equipment photos",
			"morning posts reach the most committed members",
		},
		Edges: []string{"certified coaching", "a community that shows up"},
		CTAs:  []string{"Start your free trial", "Join a class today", "Get your first session free"},
	},
	brand.TypeFinance: {
		Hooks: []string{
			"Your money should work harder than you do",
			"Plan today, relax tomorrow",
			"Financial clarity starts with one conversation",
		},
		Pains: []string{
			"hidden fees eating into returns",
			"advice that serves the advisor first",
			"tax season surprises",
		},
		ValueTmpl: []string{
			"{name} provides {service} built for {audience}",
			"Clients rely on our {feature}",
		},
		Triggers: []string{"security", "control", "confidence"},
		Insights: []string{
			"trust signals matter more than rates in financial marketing",
			"plain-language explainers outperform jargon",
		},
		Edges: []string{"transparent fee structure", "fiduciary-first advice"},
		CTAs:  []string{"Book a free review", "Get your plan started", "Contact an advisor"},
	},
	brand.TypeTechnology: {
		Hooks: []string{
			"Ship faster, worry less",
			"Built for how you actually work",
			"The upgrade your workflow deserves",
		},
		Pains: []string{
			"tools that don't talk to each other",
			"manual work that should be automated",
			"projects stuck in maintenance mode",
		},
		ValueTmpl: []string{
			"{name} builds {service} for {audience}",
			"Teams pick us for {feature}",
		},
		Triggers: []string{"efficiency", "innovation", "relief"},
		Insights: []string{
			"case studies close more deals than feature lists",
			"developers trust documentation over ads",
		},
		Edges: []string{"senior engineering talent", "support that answers"},
		CTAs:  []string{"Start a free trial", "Book a demo", "Talk to an engineer"},
	},
	brand.TypeRetail: {
		Hooks: []string{
			"New arrivals just landed",
			"Find the one you've been looking for",
			"Good things, fair prices",
		},
		Pains: []string{
			"endless scrolling with nothing to show",
			"quality that doesn't match the price",
			"returns that are a headache",
		},
		ValueTmpl: []string{
			"{name} curates {service} for {audience}",
			"Shoppers come back for {feature}",
		},
		Triggers: []string{"discovery", "delight", "value"},
		Insights: []string{
			"user-generated photos lift conversion",
			"scarcity messaging works best sparingly",
		},
		Edges: []string{"hand-picked selection", "hassle-free returns"},
		CTAs:  []string{"Shop the collection", "Visit us in store", "Get yours today"},
	},
	brand.TypeBeauty: {
		Hooks: []string{
			"You, but polished",
			"Book the glow-up",
			"Self-care is not selfish",
		},
		Pains: []string{
			"stylists who don't listen",
			"treatments that don't last",
			"products that promise and don't deliver",
		},
		ValueTmpl: []string{
			"{name} offers {service} personalized for {audience}",
			"Clients love our {feature}",
		},
		Triggers: []string{"confidence", "indulgence", "renewal"},
		Insights: []string{
			"before-and-after posts drive bookings",
			"loyalty perks keep chairs filled midweek",
		},
		Edges: []string{"experienced stylists", "premium product lines"},
		CTAs:  []string{"Book your appointment", "Try our signature treatment", "Get 10% off your first visit"},
	},
	brand.TypeEducation: {
		Hooks: []string{
			"Learn something that changes everything",
			"Your future self will thank you",
			"Skills beat credentials",
		},
		Pains: []string{
			"courses that never get finished",
			"theory with no practice",
			"one-size-fits-all teaching",
		},
		ValueTmpl: []string{
			"{name} teaches {service} designed for {audience}",
			"Students succeed because of {feature}",
		},
		Triggers: []string{"growth", "opportunity", "pride"},
		Insights: []string{
			"student outcomes sell better than curricula",
			"free intro sessions convert browsers into learners",
		},
		Edges: []string{"instructors who practice what they teach", "small class sizes"},
		CTAs:  []string{"Enroll today", "Book a free lesson", "Start learning now"},
	},
	brand.TypeRealEstate: {
		Hooks: []string{
			"Home is one decision away",
			"Know what your property is really worth",
			"The market moves, we watch it for you",
		},
		Pains: []string{
			"listings that sell before you see them",
			"agents who vanish after the contract",
			"pricing guesswork",
		},
		ValueTmpl: []string{
			"{name} guides {audience} through {service}",
			"Clients trust our {feature}",
		},
		Triggers: []string{"belonging", "security", "pride of ownership"},
		Insights: []string{
			"neighborhood content builds local authority",
			"video walkthroughs double inquiry rates",
		},
		Edges: []string{"street-level market knowledge", "negotiation experience"},
		CTAs:  []string{"Book a valuation", "Browse our listings", "Call your local agent"},
	},
	brand.TypeAutomotive: {
		Hooks: []string{
			"Strange noise? Don't ignore it",
			"Road trip ready?",
			"Honest answers about your car",
		},
		Pains: []string{
			"repair quotes that balloon",
			"mechanics who talk down to you",
			"being without a car for days",
		},
		ValueTmpl: []string{
			"{name} handles {service} for {audience}",
			"Drivers return for our {feature}",
		},
		Triggers: []string{"reliability", "safety", "fairness"},
		Insights: []string{
			"seasonal maintenance reminders drive bookings",
			"transparent pricing posts earn shares",
		},
		Edges: []string{"upfront quotes", "same-day turnaround"},
		CTAs:  []string{"Book a service", "Get a free quote", "Call the shop"},
	},
	brand.TypeGeneral: {
		Hooks: []string{
			"Quality you can count on",
			"See why locals choose us",
			"Better service, no excuses",
		},
		Pains: []string{
			"providers who overpromise",
			"slow responses when it matters",
			"paying more for less",
		},
		ValueTmpl: []string{
			"{name} delivers {service} for {audience}",
			"Customers stay for {feature}",
		},
		Triggers: []string{"trust", "convenience", "value"},
		Insights: []string{
			"consistent posting beats viral chasing",
			"replying to every comment builds loyalty",
		},
		Edges: []string{"personal service", "local accountability"},
		CTAs:  []string{"Get in touch today", "Visit us this week", "Learn more"},
	},
}

// playbookFor never misses; unknown types use the general playbook.
func playbookFor(t brand.BusinessType) playbook {
	if pb, ok := playbooks[t]; ok {
		return pb
	}
	return playbooks[brand.TypeGeneral]
}
