package catalog

import "github.com/Marjona6/sproutish/internal/domain"

// habits is the full static catalog: three definitions per category. Ids are
// stable and never reused; existing assignment records reference them.
var habits = []domain.Habit{
	// Health & wellness
	{
		ID:            "health-001",
		Title:         "Drink a glass of water",
		Description:   "Start your day with hydration to boost energy and metabolism.",
		Category:      domain.CategoryHealth,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "1 minute",
		Tips: []string{
			"Keep a water bottle by your bed",
			"Add lemon for flavor and vitamin C",
			"Set a reminder on your phone",
		},
		Benefits: []string{
			"Improves energy levels",
			"Boosts metabolism",
			"Enhances cognitive function",
			"Supports healthy skin",
		},
		Icon:  "💧",
		Color: "#4CAF50",
	},
	{
		ID:            "health-002",
		Title:         "Do 10 jumping jacks",
		Description:   "Quick cardio burst to get your heart pumping and energy flowing.",
		Category:      domain.CategoryHealth,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "2 minutes",
		Tips: []string{
			"Do them in the morning for energy",
			"Focus on good form over speed",
			"Breathe steadily throughout",
		},
		Benefits: []string{
			"Increases heart rate",
			"Improves coordination",
			"Releases endorphins",
			"Burns calories",
		},
		Icon:  "🏃",
		Color: "#4CAF50",
	},
	{
		ID:            "health-003",
		Title:         "Take 5 deep breaths",
		Description:   "Mindful breathing to reduce stress and improve focus.",
		Category:      domain.CategoryHealth,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "2 minutes",
		Tips: []string{
			"Breathe in through your nose",
			"Hold for 3 seconds",
			"Exhale slowly through your mouth",
			"Focus on the sensation of breathing",
		},
		Benefits: []string{
			"Reduces stress and anxiety",
			"Improves focus and clarity",
			"Lowers blood pressure",
			"Increases oxygen to brain",
		},
		Icon:  "🫁",
		Color: "#4CAF50",
	},

	// Productivity
	{
		ID:            "productivity-001",
		Title:         "Write down 3 priorities",
		Description:   "Clarify your most important tasks for the day ahead.",
		Category:      domain.CategoryProductivity,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "3 minutes",
		Tips: []string{
			"Do this first thing in the morning",
			"Keep it to 3 items maximum",
			"Be specific and actionable",
			"Review at the end of the day",
		},
		Benefits: []string{
			"Increases focus and clarity",
			"Reduces decision fatigue",
			"Improves time management",
			"Boosts sense of accomplishment",
		},
		Icon:  "📝",
		Color: "#2196F3",
	},
	{
		ID:            "productivity-002",
		Title:         "Clear your workspace",
		Description:   "Organize your physical space for better mental clarity.",
		Category:      domain.CategoryProductivity,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Start with one surface",
			"Put things in their proper place",
			"Remove unnecessary items",
			"Make it a daily habit",
		},
		Benefits: []string{
			"Reduces distractions",
			"Improves focus",
			"Creates positive environment",
			"Saves time looking for things",
		},
		Icon:  "🧹",
		Color: "#2196F3",
	},
	{
		ID:            "productivity-003",
		Title:         "Turn off notifications for 30 minutes",
		Description:   "Create focused work time without digital interruptions.",
		Category:      domain.CategoryProductivity,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: "1 minute setup",
		Tips: []string{
			"Schedule this during your most productive hours",
			"Use airplane mode if needed",
			"Let others know you're focusing",
			"Gradually increase the time",
		},
		Benefits: []string{
			"Improves concentration",
			"Reduces stress",
			"Increases productivity",
			"Better quality work",
		},
		Icon:  "🔕",
		Color: "#2196F3",
	},

	// Mindfulness
	{
		ID:            "mindfulness-001",
		Title:         "Practice gratitude",
		Description:   "Reflect on three things you're grateful for today.",
		Category:      domain.CategoryMindfulness,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "3 minutes",
		Tips: []string{
			"Write them down in a journal",
			"Be specific about why you're grateful",
			"Include both big and small things",
			"Do this in the morning or evening",
		},
		Benefits: []string{
			"Improves mood and happiness",
			"Reduces stress and anxiety",
			"Strengthens relationships",
			"Increases resilience",
		},
		Icon:  "🙏",
		Color: "#9C27B0",
	},
	{
		ID:            "mindfulness-002",
		Title:         "Mindful eating",
		Description:   "Eat one meal today without distractions, focusing on taste and texture.",
		Category:      domain.CategoryMindfulness,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: "15 minutes",
		Tips: []string{
			"Turn off TV and put phone away",
			"Take small bites",
			"Chew slowly and thoroughly",
			"Notice flavors and textures",
		},
		Benefits: []string{
			"Improves digestion",
			"Helps with portion control",
			"Reduces stress",
			"Enhances enjoyment of food",
		},
		Icon:  "🍽️",
		Color: "#9C27B0",
	},
	{
		ID:            "mindfulness-003",
		Title:         "Body scan meditation",
		Description:   "Take 5 minutes to scan your body from head to toe.",
		Category:      domain.CategoryMindfulness,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Find a comfortable position",
			"Start from your toes",
			"Notice sensations without judgment",
			"Breathe naturally",
		},
		Benefits: []string{
			"Reduces stress and tension",
			"Improves body awareness",
			"Helps with relaxation",
			"Better sleep quality",
		},
		Icon:  "🧘",
		Color: "#9C27B0",
	},

	// Relationships
	{
		ID:            "relationships-001",
		Title:         "Send a kind message",
		Description:   "Reach out to someone with a thoughtful message or compliment.",
		Category:      domain.CategoryRelationships,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "2 minutes",
		Tips: []string{
			"Be genuine and specific",
			"Don't expect a response",
			"Focus on their positive qualities",
			"Make it personal",
		},
		Benefits: []string{
			"Strengthens relationships",
			"Improves your mood",
			"Creates positive connections",
			"Builds trust and rapport",
		},
		Icon:  "💌",
		Color: "#F44336",
	},
	{
		ID:            "relationships-002",
		Title:         "Active listening",
		Description:   "Have a conversation where you focus entirely on the other person.",
		Category:      domain.CategoryRelationships,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: "10 minutes",
		Tips: []string{
			"Put away distractions",
			"Make eye contact",
			"Ask follow-up questions",
			"Don't interrupt or plan your response",
		},
		Benefits: []string{
			"Deepens relationships",
			"Improves communication",
			"Builds trust",
			"Reduces misunderstandings",
		},
		Icon:  "👂",
		Color: "#F44336",
	},
	{
		ID:            "relationships-003",
		Title:         "Express appreciation",
		Description:   "Thank someone for something they did, no matter how small.",
		Category:      domain.CategoryRelationships,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "1 minute",
		Tips: []string{
			"Be specific about what you appreciate",
			"Do it in person when possible",
			"Make it timely",
			"Be genuine",
		},
		Benefits: []string{
			"Strengthens bonds",
			"Improves workplace culture",
			"Increases positive interactions",
			"Builds mutual respect",
		},
		Icon:  "❤️",
		Color: "#F44336",
	},

	// Learning
	{
		ID:            "learning-001",
		Title:         "Learn a new word",
		Description:   "Discover and use a new word in conversation today.",
		Category:      domain.CategoryLearning,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Use a word-of-the-day app",
			"Look up its etymology",
			"Try to use it in a sentence",
			"Share it with someone",
		},
		Benefits: []string{
			"Expands vocabulary",
			"Improves communication",
			"Keeps mind active",
			"Boosts confidence",
		},
		Icon:  "📚",
		Color: "#FF9800",
	},
	{
		ID:            "learning-002",
		Title:         "Read for 10 minutes",
		Description:   "Dedicate time to reading something educational or inspiring.",
		Category:      domain.CategoryLearning,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "10 minutes",
		Tips: []string{
			"Choose something you're interested in",
			"Find a quiet space",
			"Take notes if helpful",
			"Make it a daily habit",
		},
		Benefits: []string{
			"Increases knowledge",
			"Improves focus",
			"Reduces stress",
			"Enhances vocabulary",
		},
		Icon:  "📖",
		Color: "#FF9800",
	},
	{
		ID:            "learning-003",
		Title:         "Watch an educational video",
		Description:   "Spend 10 minutes learning something new from a video.",
		Category:      domain.CategoryLearning,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "10 minutes",
		Tips: []string{
			"Choose a topic you're curious about",
			"Take notes",
			"Apply what you learn",
			"Share with others",
		},
		Benefits: []string{
			"Expands knowledge base",
			"Improves critical thinking",
			"Keeps mind engaged",
			"Provides new perspectives",
		},
		Icon:  "🎥",
		Color: "#FF9800",
	},

	// Creativity
	{
		ID:            "creativity-001",
		Title:         "Draw something",
		Description:   "Spend 5 minutes drawing, even if you think you can't draw.",
		Category:      domain.CategoryCreativity,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Don't worry about perfection",
			"Use simple shapes",
			"Draw what you see",
			"Enjoy the process",
		},
		Benefits: []string{
			"Improves hand-eye coordination",
			"Reduces stress",
			"Boosts creativity",
			"Enhances observation skills",
		},
		Icon:  "🎨",
		Color: "#E91E63",
	},
	{
		ID:            "creativity-002",
		Title:         "Write a haiku",
		Description:   "Create a 3-line poem with 5-7-5 syllable pattern.",
		Category:      domain.CategoryCreativity,
		Difficulty:    domain.DifficultyMedium,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Focus on nature or emotions",
			"Count syllables carefully",
			"Don't overthink it",
			"Share with others",
		},
		Benefits: []string{
			"Improves language skills",
			"Boosts creativity",
			"Enhances self-expression",
			"Provides mental exercise",
		},
		Icon:  "✍️",
		Color: "#E91E63",
	},
	{
		ID:            "creativity-003",
		Title:         "Take a creative photo",
		Description:   "Capture an interesting image with your phone camera.",
		Category:      domain.CategoryCreativity,
		Difficulty:    domain.DifficultyEasy,
		EstimatedTime: "5 minutes",
		Tips: []string{
			"Look for interesting angles",
			"Pay attention to lighting",
			"Focus on composition",
			"Try different perspectives",
		},
		Benefits: []string{
			"Improves observation skills",
			"Boosts creativity",
			"Creates lasting memories",
			"Enhances appreciation of beauty",
		},
		Icon:  "📸",
		Color: "#E91E63",
	},
}
