package quiz

// builtinQuizzes are the quizzes shipped with the portal. The catalog can
// be extended at startup, but these are always available.
var builtinQuizzes = []Definition{
	{
		ID:          "math-basics",
		Title:       "Mathematics Fundamentals",
		Description: "Test your basic math skills",
		Difficulty:  DifficultyEasy,
		Duration:    15,
		Questions: []Question{
			{
				ID:          1,
				Prompt:      "What is 15 + 27?",
				Options:     []string{"40", "42", "44", "46"},
				Correct:     1,
				Explanation: "15 + 27 = 42",
			},
			{
				ID:          2,
				Prompt:      "What is the square root of 64?",
				Options:     []string{"6", "7", "8", "9"},
				Correct:     2,
				Explanation: "√64 = 8 because 8 × 8 = 64",
			},
			{
				ID:          3,
				Prompt:      "What is 12 × 8?",
				Options:     []string{"84", "92", "96", "104"},
				Correct:     2,
				Explanation: "12 × 8 = 96",
			},
		},
	},
	{
		ID:          "physics-motion",
		Title:       "Physics: Motion & Forces",
		Description: "Understanding basic physics concepts",
		Difficulty:  DifficultyMedium,
		Duration:    20,
		Questions: []Question{
			{
				ID:     1,
				Prompt: "What is Newton's first law of motion?",
				Options: []string{
					"F = ma",
					"An object at rest stays at rest unless acted upon by a force",
					"For every action, there is an equal and opposite reaction",
					"Energy cannot be created or destroyed",
				},
				Correct:     1,
				Explanation: "Newton's first law states that an object at rest stays at rest and an object in motion stays in motion unless acted upon by an external force.",
			},
			{
				ID:          2,
				Prompt:      "What is the unit of force?",
				Options:     []string{"Joule", "Newton", "Watt", "Pascal"},
				Correct:     1,
				Explanation: "The Newton (N) is the unit of force in the International System of Units.",
			},
		},
	},
	{
		ID:          "chemistry-elements",
		Title:       "Chemistry: Elements & Compounds",
		Description: "Atoms, elements and the periodic table",
		Difficulty:  DifficultyMedium,
		Duration:    15,
		Questions: []Question{
			{
				ID:          1,
				Prompt:      "What is the chemical symbol for gold?",
				Options:     []string{"Go", "Gd", "Au", "Ag"},
				Correct:     2,
				Explanation: "Au comes from aurum, the Latin name for gold.",
			},
			{
				ID:          2,
				Prompt:      "How many protons does a carbon atom have?",
				Options:     []string{"4", "6", "8", "12"},
				Correct:     1,
				Explanation: "Carbon has atomic number 6, so it has 6 protons.",
			},
			{
				ID:          3,
				Prompt:      "Which of these is a noble gas?",
				Options:     []string{"Oxygen", "Nitrogen", "Argon", "Chlorine"},
				Correct:     2,
				Explanation: "Argon is in group 18 of the periodic table, the noble gases.",
			},
		},
	},
}

// DefaultCatalog loads the built-in quizzes. The fixtures are maintained
// alongside the validation rules, so a load failure is a programming
// error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(builtinQuizzes...)
	if err != nil {
		panic(err)
	}
	return c
}
