// Package catalog holds the built-in goal template library. The catalog
// is defined at build time, never persisted, and safe to share: all
// access is read-only.
package catalog

import "dreambook/internal/models"

// Template is a static goal suggestion used to seed recommendations
type Template struct {
	Title          string
	Description    string
	Category       models.Category
	Mood           models.Mood
	SuggestedSteps []string
	Skills         []string
	Interests      []string
	MinAge         int // inclusive
	MaxAge         int // inclusive
	Insight        string
}

// InAgeRange reports whether age falls within the template's valid range
func (t *Template) InAgeRange(age int) bool {
	return age >= t.MinAge && age <= t.MaxAge
}

// FindByTitle returns the template with an exactly matching title, or nil
func FindByTitle(title string) *Template {
	for i := range Templates {
		if Templates[i].Title == title {
			return &Templates[i]
		}
	}
	return nil
}

// Templates is the full template library, in presentation order.
// Scoring ties preserve this order, so it is part of observable behavior.
var Templates = []Template{
	{
		Title:       "Launch a Side Business",
		Description: "Turn your passion into a profitable venture. Start small, think big, and build something meaningful.",
		Category:    models.CategoryCareer, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Identify your niche and target market", "Create a business plan", "Build a minimum viable product", "Set up online presence", "Launch and get first customers", "Iterate based on feedback"},
		Skills:         []string{"marketing", "leadership", "communication", "design", "programming"},
		Interests:      []string{"business", "technology"},
		MinAge:         16, MaxAge: 55,
		Insight: "Entrepreneurship aligns with your creative and leadership skills. Starting small reduces risk while building real-world experience.",
	},
	{
		Title:       "Earn a Professional Certification",
		Description: "Level up your career with a recognized certification in your field.",
		Category:    models.CategoryCareer, Mood: models.MoodNeutral,
		SuggestedSteps: []string{"Research certifications in your field", "Choose exam and register", "Create a study schedule", "Complete practice tests", "Pass the certification exam"},
		Skills:         []string{"analytics", "problem solving", "engineering"},
		Interests:      []string{"education", "business", "technology"},
		MinAge:         18, MaxAge: 50,
		Insight: "Certifications signal expertise and commitment. They open doors to roles that value proven, structured knowledge.",
	},
	{
		Title:       "Master Public Speaking",
		Description: "Overcome stage fright and become a confident, compelling speaker.",
		Category:    models.CategoryCareer, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Join a speaking group or club", "Prepare a 5-minute talk", "Practice in front of friends", "Give a talk at a local event", "Seek feedback and refine your style"},
		Skills:         []string{"communication", "leadership", "public speaking"},
		Interests:      []string{"business", "education"},
		MinAge:         14, MaxAge: 60,
		Insight: "Public speaking is one of the most transferable skills. Mastering it amplifies every other professional ability you have.",
	},
	{
		Title:       "Land Your Dream Job",
		Description: "Position yourself for the career you've always wanted through strategic preparation.",
		Category:    models.CategoryCareer, Mood: models.MoodJoyful,
		SuggestedSteps: []string{"Define your ideal role and company", "Update resume and portfolio", "Network with industry professionals", "Prepare for interviews", "Apply to target companies", "Negotiate your offer"},
		Skills:         []string{"communication", "leadership", "problem solving"},
		Interests:      []string{"business"},
		MinAge:         18, MaxAge: 45,
		Insight: "Strategic career moves require clarity about what you want. Define the destination first, then reverse-engineer the path.",
	},
	{
		Title:       "Run a Half Marathon",
		Description: "Challenge yourself physically and mentally by training for and completing a half marathon.",
		Category:    models.CategoryHealth, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Get a health checkup", "Start with a couch-to-5K plan", "Build up weekly mileage", "Complete a 10K race", "Follow a half marathon training plan", "Race day — finish strong!"},
		Skills:         []string{"fitness"},
		Interests:      []string{"sports", "health"},
		MinAge:         14, MaxAge: 55,
		Insight: "Endurance training builds mental resilience as much as physical strength. The discipline transfers to every area of life.",
	},
	{
		Title:       "Develop a Daily Meditation Practice",
		Description: "Find inner calm and clarity through a consistent meditation routine.",
		Category:    models.CategoryHealth, Mood: models.MoodPeaceful,
		SuggestedSteps: []string{"Start with 5 minutes daily", "Try different meditation styles", "Build up to 15 minutes", "Create a dedicated meditation space", "Maintain a 30-day streak"},
		Skills:         []string{},
		Interests:      []string{"health", "psychology"},
		MinAge:         12, MaxAge: 70,
		Insight: "Meditation rewires your brain for focus and emotional regulation. Even 5 minutes daily creates measurable cognitive benefits.",
	},
	{
		Title:       "Master Healthy Cooking",
		Description: "Learn to prepare nutritious, delicious meals that fuel your body and delight your taste buds.",
		Category:    models.CategoryHealth, Mood: models.MoodJoyful,
		SuggestedSteps: []string{"Learn 5 basic cooking techniques", "Plan weekly meal prep", "Master 10 healthy recipes", "Experiment with global cuisines", "Cook a healthy dinner party"},
		Skills:         []string{"cooking"},
		Interests:      []string{"food", "health"},
		MinAge:         14, MaxAge: 65,
		Insight: "Cooking is a creative act with immediate rewards. Mastering it gives you control over your health and brings people together.",
	},
	{
		Title:       "Learn a New Language",
		Description: "Open doors to new cultures and connections by becoming conversational in another language.",
		Category:    models.CategoryEducation, Mood: models.MoodMysterious,
		SuggestedSteps: []string{"Choose your target language", "Start with basics and pronunciation", "Practice daily for 20 minutes", "Find a language exchange partner", "Watch shows in that language", "Have a 10-minute conversation"},
		Skills:         []string{"languages", "communication"},
		Interests:      []string{"travel", "education"},
		MinAge:         10, MaxAge: 70,
		Insight: "Language learning reshapes how you think. Bilingual minds show enhanced problem-solving and cognitive flexibility.",
	},
	{
		Title:       "Read 30 Books This Year",
		Description: "Expand your mind and perspective through a dedicated reading challenge.",
		Category:    models.CategoryEducation, Mood: models.MoodPeaceful,
		SuggestedSteps: []string{"Create a reading list", "Set aside 30 minutes daily for reading", "Join a book club", "Mix fiction and non-fiction", "Track and review each book", "Share your favorites with friends"},
		Skills:         []string{"writing"},
		Interests:      []string{"reading", "education"},
		MinAge:         12, MaxAge: 70,
		Insight: "Reading is compound interest for your mind. Each book adds context and depth to everything that follows.",
	},
	{
		Title:       "Master a Musical Instrument",
		Description: "Express yourself through music by learning to play an instrument you love.",
		Category:    models.CategoryCreative, Mood: models.MoodJoyful,
		SuggestedSteps: []string{"Choose your instrument", "Find a teacher or course", "Practice 20 minutes daily", "Learn 5 songs you love", "Perform for friends or family", "Join a jam session or band"},
		Skills:         []string{"music"},
		Interests:      []string{"music"},
		MinAge:         10, MaxAge: 70,
		Insight: "Musical training strengthens neural connections across your entire brain. It's one of the few activities that engages every cognitive system simultaneously.",
	},
	{
		Title:       "Create a Digital Art Portfolio",
		Description: "Build a stunning collection of digital artwork that showcases your unique style.",
		Category:    models.CategoryCreative, Mood: models.MoodSurreal,
		SuggestedSteps: []string{"Learn digital art fundamentals", "Choose your tools and software", "Create 10 portfolio pieces", "Develop a consistent style", "Build an online portfolio", "Share on art communities"},
		Skills:         []string{"art", "design", "photography"},
		Interests:      []string{"art", "technology"},
		MinAge:         12, MaxAge: 55,
		Insight: "Digital art removes traditional barriers to creative expression. Your portfolio becomes a living document of your creative evolution.",
	},
	{
		Title:       "Start a Photography Project",
		Description: "Tell visual stories through a focused photography project that pushes your creative boundaries.",
		Category:    models.CategoryCreative, Mood: models.MoodPeaceful,
		SuggestedSteps: []string{"Define your project theme", "Learn composition techniques", "Shoot weekly", "Edit and curate best shots", "Create a photo series", "Display or publish your work"},
		Skills:         []string{"photography", "art", "design"},
		Interests:      []string{"photography", "art", "nature", "travel"},
		MinAge:         12, MaxAge: 65,
		Insight: "Photography trains you to see beauty in the ordinary. A focused project gives your creative eye direction and purpose.",
	},
	{
		Title:       "Plan a Dream Vacation",
		Description: "Design and experience the trip of a lifetime to a place you've always wanted to visit.",
		Category:    models.CategoryTravel, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Choose your dream destination", "Research best times to visit", "Create a savings plan", "Book flights and accommodation", "Plan your itinerary", "Go and make memories!"},
		Skills:         []string{},
		Interests:      []string{"travel"},
		MinAge:         18, MaxAge: 70,
		Insight: "Travel expands your worldview more than any book or course. The planning itself is part of the adventure.",
	},
	{
		Title:       "Build an Emergency Fund",
		Description: "Create financial security with 3-6 months of expenses saved for unexpected situations.",
		Category:    models.CategoryFinancial, Mood: models.MoodNeutral,
		SuggestedSteps: []string{"Calculate monthly expenses", "Set a target savings amount", "Open a high-yield savings account", "Automate monthly transfers", "Cut unnecessary expenses", "Reach your savings goal"},
		Skills:         []string{"analytics", "finance"},
		Interests:      []string{"business"},
		MinAge:         18, MaxAge: 60,
		Insight: "Financial security isn't about wealth — it's about freedom. An emergency fund removes the anxiety that blocks creative thinking.",
	},
	{
		Title:       "Journal Every Day",
		Description: "Develop self-awareness and clarity through a daily journaling practice.",
		Category:    models.CategoryPersonalGrowth, Mood: models.MoodPeaceful,
		SuggestedSteps: []string{"Choose a journal format", "Write at the same time daily", "Start with gratitude entries", "Reflect on weekly progress", "Complete a 60-day streak"},
		Skills:         []string{"writing"},
		Interests:      []string{"psychology", "health"},
		MinAge:         12, MaxAge: 70,
		Insight: "Journaling externalizes your thoughts, making patterns visible that are invisible in your mind. It's therapy you give yourself.",
	},
	{
		Title:       "Build a Powerful Morning Routine",
		Description: "Start every day with intention and energy through a carefully crafted morning ritual.",
		Category:    models.CategoryPersonalGrowth, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Wake up 30 minutes earlier", "Add exercise or stretching", "Include mindfulness or meditation", "Plan your top 3 priorities", "Maintain for 30 consecutive days"},
		Skills:         []string{"fitness"},
		Interests:      []string{"health", "psychology"},
		MinAge:         14, MaxAge: 70,
		Insight: "Your morning routine sets the trajectory for your entire day. Winning the morning means winning the day.",
	},
	{
		Title:       "Build Your First App",
		Description: "Bring your ideas to life by learning to build a mobile or web application from scratch.",
		Category:    models.CategoryTechnology, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Choose a platform (iOS, Android, Web)", "Learn the fundamentals", "Design your app concept", "Build a working prototype", "Test with real users", "Launch on a store or platform"},
		Skills:         []string{"programming", "design", "engineering"},
		Interests:      []string{"technology", "science"},
		MinAge:         14, MaxAge: 50,
		Insight: "Building an app teaches you to think in systems. It's the intersection of creativity, logic, and empathy for users.",
	},
	{
		Title:       "Learn AI & Machine Learning",
		Description: "Understand the technology shaping the future by diving into AI fundamentals.",
		Category:    models.CategoryTechnology, Mood: models.MoodMysterious,
		SuggestedSteps: []string{"Learn Python basics", "Study ML fundamentals", "Complete an AI course", "Build a simple ML model", "Apply AI to a real problem"},
		Skills:         []string{"programming", "analytics", "engineering"},
		Interests:      []string{"technology", "science"},
		MinAge:         16, MaxAge: 50,
		Insight: "AI literacy is becoming as essential as digital literacy. Understanding it positions you at the frontier of every industry.",
	},
	{
		Title:       "Volunteer Regularly",
		Description: "Make a meaningful impact in your community through consistent volunteer work.",
		Category:    models.CategorySocial, Mood: models.MoodJoyful,
		SuggestedSteps: []string{"Identify causes you care about", "Research local organizations", "Commit to a regular schedule", "Complete 50 volunteer hours", "Inspire others to join"},
		Skills:         []string{"leadership", "communication", "teaching"},
		Interests:      []string{"volunteering"},
		MinAge:         14, MaxAge: 70,
		Insight: "Service to others is paradoxically one of the best things you can do for yourself. It builds purpose, connection, and perspective.",
	},
	{
		Title:       "Try 12 New Experiences",
		Description: "Step outside your comfort zone with one new experience every month for a year.",
		Category:    models.CategoryAdventure, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Brainstorm 20 experiences you've never tried", "Pick one per month", "Document each experience", "Rate and reflect on each one", "Share your favorites with others"},
		Skills:         []string{},
		Interests:      []string{"travel", "sports", "nature"},
		MinAge:         14, MaxAge: 60,
		Insight: "Novelty is the antidote to stagnation. Each new experience rewires your brain and expands your sense of what's possible.",
	},
	{
		Title:       "Start a Podcast",
		Description: "Share your voice and ideas with the world through your own podcast show.",
		Category:    models.CategoryCreative, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Define your podcast concept and audience", "Get recording equipment", "Record your first 3 episodes", "Launch on podcast platforms", "Build a consistent release schedule", "Reach 100 listeners"},
		Skills:         []string{"communication", "marketing", "music"},
		Interests:      []string{"technology", "business", "movies"},
		MinAge:         16, MaxAge: 55,
		Insight: "Podcasting develops your voice — literally and figuratively. Teaching others forces you to deeply understand your subject.",
	},
	{
		Title:       "Write a Short Story Collection",
		Description: "Channel your creativity into compelling narratives that captivate readers.",
		Category:    models.CategoryCreative, Mood: models.MoodMysterious,
		SuggestedSteps: []string{"Brainstorm story ideas", "Write one short story per month", "Join a writing workshop", "Get feedback from beta readers", "Edit and polish your collection", "Publish or submit to magazines"},
		Skills:         []string{"writing", "communication"},
		Interests:      []string{"reading", "art"},
		MinAge:         14, MaxAge: 70,
		Insight: "Writing fiction is an exercise in radical empathy. Creating characters teaches you to see the world through completely different eyes.",
	},
	{
		Title:       "Build a Workout Routine",
		Description: "Create a sustainable fitness habit that transforms your energy and confidence.",
		Category:    models.CategoryHealth, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Set specific fitness goals", "Choose your workout style", "Start with 3 days per week", "Track your progress", "Increase intensity gradually", "Hit a personal record"},
		Skills:         []string{"fitness"},
		Interests:      []string{"sports", "health"},
		MinAge:         14, MaxAge: 60,
		Insight: "Physical fitness is the foundation that supports every other dream. A strong body creates a strong mind.",
	},
	{
		Title:       "Build a Personal Brand",
		Description: "Establish yourself as a thought leader in your industry.",
		Category:    models.CategoryCareer, Mood: models.MoodExciting,
		SuggestedSteps: []string{"Define your unique value proposition", "Create content strategy", "Build social media presence", "Write articles or blog posts", "Speak at events or podcasts"},
		Skills:         []string{"marketing", "writing", "communication", "design"},
		Interests:      []string{"business", "technology"},
		MinAge:         16, MaxAge: 50,
		Insight: "Your personal brand is your reputation at scale. In the attention economy, visibility compounds like interest.",
	},
}
