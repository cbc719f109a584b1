package catalog

// Intent tags with behavior attached in the chatbot service.
// Other tags are plain pattern -> canned-response lookups.
const (
	IntentGreeting       = "greeting"
	IntentGoodbye        = "goodbye"
	IntentRecommendation = "course_recommendation"
)

// Intent is a single conversational intent: a category label, the example
// phrases users type for it, and the candidate replies the bot may pick from.
type Intent struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// Intents returns the chatbot intent definitions.
// The returned slice is shared; callers must not mutate it.
// Order matters: on equal match scores the first intent wins.
func Intents() []Intent {
	return allIntents
}

var allIntents = []Intent{
	{
		Tag: IntentGreeting,
		Patterns: []string{
			"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
			"hello there", "hi there",
		},
		Responses: []string{
			"Hello! Welcome to iTech Institute. How can I help you today?",
			"Hi there! Ask me about our courses, fees, or timings.",
			"Hey! I'm the iTech assistant. What would you like to know?",
		},
	},
	{
		Tag: IntentGoodbye,
		Patterns: []string{
			"bye", "goodbye", "see you", "see you later", "talk to you later",
			"thanks bye", "ok bye",
		},
		Responses: []string{
			"Goodbye! Feel free to come back if you have more questions.",
			"See you! Good luck with your studies.",
		},
	},
	{
		Tag: IntentRecommendation,
		Patterns: []string{
			"recommend a course", "i want to recommend a course", "which course should i take",
			"suggest a course for me", "help me choose a course", "course recommendation",
			"what course is right for me",
		},
		Responses: []string{
			"I'd love to help you find the right course! First, tell me about your interests (e.g., technology, design, business).",
			"Great, let's find a course for you. What are your interests?",
		},
	},
	{
		Tag: "courses",
		Patterns: []string{
			"what courses do you offer", "list of courses", "available courses",
			"which courses are there", "show me your courses",
		},
		Responses: []string{
			"We offer courses in programming, web and mobile development, data science, design, accounting, and more. Visit our courses page for the full list, or ask me to recommend one!",
		},
	},
	{
		Tag: "fees",
		Patterns: []string{
			"how much does it cost", "what are the fees", "course fees",
			"fee structure", "price of courses",
		},
		Responses: []string{
			"Fees vary by course, from short certificate courses to full diplomas. Check the course details on our courses page, or tell me which course you're interested in.",
		},
	},
	{
		Tag: "timings",
		Patterns: []string{
			"what are your timings", "opening hours", "when are you open",
			"class timings", "batch timings",
		},
		Responses: []string{
			"We run weekday and weekend batches between 9 AM and 8 PM. Contact our office to find a batch that fits your schedule.",
		},
	},
	{
		Tag: "admission",
		Patterns: []string{
			"how do i enroll", "how to join", "admission process",
			"how can i register", "i want to enroll",
		},
		Responses: []string{
			"You can enroll through the enrollment form on our website, or visit any of our branches. Need help picking a course first? Just ask for a recommendation!",
		},
	},
	{
		Tag: "contact",
		Patterns: []string{
			"how can i contact you", "phone number", "email address",
			"where are you located", "address",
		},
		Responses: []string{
			"You can reach us through the contact form on our website or visit the branches page for addresses and phone numbers.",
		},
	},
	{
		Tag: "thanks",
		Patterns: []string{
			"thanks", "thank you", "thanks a lot", "that was helpful",
		},
		Responses: []string{
			"You're welcome! Anything else I can help with?",
			"Happy to help!",
		},
	},
}
