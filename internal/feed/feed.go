// Package feed serves the curated learning-feed topics. The content is
// static and read-only; no model call is involved.
package feed

// QuizQuestion is a multiple-choice question attached to a topic.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Topic is one curated learning-feed entry.
type Topic struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Category     string         `json:"category"`
	Summary      string         `json:"summary"`
	KeyFacts     []string       `json:"keyFacts"`
	WhyItMatters string         `json:"whyItMatters"`
	Quiz         []QuizQuestion `json:"quiz"`
	ReadTime     string         `json:"readTime"`
}

// Topics returns the current feed. The backing slice is freshly allocated
// on each call so callers cannot reorder or overwrite the shared entries.
func Topics() []Topic {
	out := make([]Topic, len(hotTopics))
	copy(out, hotTopics)
	return out
}

var hotTopics = []Topic{
	{
		ID:       "ai-agents",
		Title:    "AI Agents: The Next Wave",
		Category: "AI & Tech",
		Summary: "AI agents are programs that can think, plan, and do tasks on their own! " +
			"Unlike chatbots that just answer one question at a time, agents can break down " +
			"big goals into steps and work through them independently.",
		KeyFacts: []string{
			"AI agents can browse the web, write code, and manage files all by themselves",
			"Big tech companies like OpenAI and Google are racing to build agent platforms",
			"The biggest challenge is making sure they're safe and don't do things we don't want",
			"They're already being used in customer service, coding help, and research",
		},
		WhyItMatters: "AI agents could change how we work and learn. Imagine having a smart " +
			"assistant that can research a topic, write notes, and create a quiz for you — " +
			"all while you take a break!",
		Quiz: []QuizQuestion{
			{
				Question: "What makes an AI agent different from a regular chatbot?",
				Options: []string{
					"Agents can only answer questions",
					"Agents can plan, reason, and take actions on their own",
					"Agents are always connected to the internet",
					"Agents use more electricity",
				},
				CorrectIndex: 1,
			},
			{
				Question: "What's one of the biggest challenges with AI agents?",
				Options: []string{
					"They're too expensive to run",
					"They can only work in English",
					"Making sure they're safe and don't do unexpected things",
					"They need quantum computers",
				},
				CorrectIndex: 2,
			},
		},
		ReadTime: "3 min",
	},
	{
		ID:       "climate-tipping",
		Title:    "Climate Tipping Points",
		Category: "Our Planet",
		Summary: "Tipping points are like dominoes in our climate. Once one falls, it can " +
			"knock over others and cause huge changes that we can't undo — like massive ice " +
			"sheets melting or the Amazon rainforest drying out.",
		KeyFacts: []string{
			"Scientists have found at least 9 major climate tipping points",
			"Some might happen with just 1.5°C of warming (we're already close!)",
			"Tipping points can trigger each other like falling dominoes",
			"The Atlantic ocean current could slow down, totally changing Europe's weather",
		},
		WhyItMatters: "Every fraction of a degree matters! Understanding tipping points helps " +
			"explain why scientists are so worried and why the choices we make today have " +
			"permanent consequences.",
		Quiz: []QuizQuestion{
			{
				Question: "What is a climate tipping point?",
				Options: []string{
					"When summer gets really hot",
					"A point where small changes trigger huge, permanent shifts",
					"When renewable energy gets cheaper",
					"A government deadline for climate action",
				},
				CorrectIndex: 1,
			},
			{
				Question: "What does 'cascading tipping points' mean?",
				Options: []string{
					"Heavy rainfall everywhere",
					"One tipping point triggers others like falling dominoes",
					"Countries reducing emissions together",
					"Fast economic changes",
				},
				CorrectIndex: 1,
			},
		},
		ReadTime: "4 min",
	},
	{
		ID:       "defi-basics",
		Title:    "Digital Money Explained",
		Category: "Finance & Tech",
		Summary: "DeFi (Decentralised Finance) uses blockchain tech to do banking stuff " +
			"without actual banks! Smart contracts are like robot bankers that follow rules " +
			"automatically. Even governments are making their own digital currencies now.",
		KeyFacts: []string{
			"DeFi systems hold over $100 billion in digital money worldwide",
			"Smart contracts are code that automatically follows rules — no humans needed",
			"Over 100 countries are thinking about making their own digital money",
			"Risks include bugs in code, scams, and rules that keep changing",
		},
		WhyItMatters: "Money is going digital fast! Whether it's cryptocurrency or government " +
			"digital currencies, understanding this helps you make smarter choices about your " +
			"financial future.",
		Quiz: []QuizQuestion{
			{
				Question: "What does DeFi stand for?",
				Options: []string{
					"Digital Finance",
					"Decentralised Finance",
					"Defined Financial",
					"Deferred Finance",
				},
				CorrectIndex: 1,
			},
			{
				Question: "What do smart contracts do?",
				Options: []string{
					"Store crypto safely",
					"Automatically follow coded rules to handle transactions",
					"Connect to bank accounts",
					"Mine new crypto",
				},
				CorrectIndex: 1,
			},
		},
		ReadTime: "4 min",
	},
	{
		ID:       "neuroscience-learning",
		Title:    "How Your Brain Learns",
		Category: "Brain Science",
		Summary: "Your brain physically changes when you learn! Every time you study " +
			"something, connections between brain cells get stronger. And there are " +
			"science-backed tricks to make your studying WAY more effective.",
		KeyFacts: []string{
			"Studying a little bit every day beats cramming everything at once",
			"Your brain sorts and strengthens memories while you sleep (so sleep matters!)",
			"Testing yourself is way more effective than just re-reading notes",
			"Your brain's learning centre is still developing through your teen years",
		},
		WhyItMatters: "Knowing how your brain works lets you study SMARTER, not harder. These " +
			"science-backed tips can seriously boost your grades without more study time!",
		Quiz: []QuizQuestion{
			{
				Question: "Why does studying a little every day work better than cramming?",
				Options: []string{
					"It takes less total time",
					"Your brain needs time between sessions to strengthen memories",
					"It uses more brain energy",
					"It only works for languages",
				},
				CorrectIndex: 1,
			},
			{
				Question: "What happens in your brain while you sleep?",
				Options: []string{
					"Nothing related to learning",
					"Your brain only rests",
					"Your brain replays and strengthens what you learned",
					"Sleep only helps before tests",
				},
				CorrectIndex: 2,
			},
		},
		ReadTime: "3 min",
	},
}
