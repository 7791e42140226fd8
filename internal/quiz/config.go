package quiz

// Config controls how a quiz is assembled.
type Config struct {
	// QuestionCount caps the number of questions per quiz.
	QuestionCount int

	// CurrentLevelWeight is how many times the target level's words
	// appear in the pool. Earlier levels appear once.
	CurrentLevelWeight int

	// OptionCount is the number of answer options per question,
	// including the correct one.
	OptionCount int
}

// DefaultConfig returns the standard quiz shape: 50 questions, the
// current level weighted 3x, four options.
func DefaultConfig() Config {
	return Config{
		QuestionCount:      50,
		CurrentLevelWeight: 3,
		OptionCount:        4,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.QuestionCount <= 0 {
		c.QuestionCount = d.QuestionCount
	}
	if c.CurrentLevelWeight < 1 {
		c.CurrentLevelWeight = 1
	}
	if c.OptionCount < 1 {
		c.OptionCount = d.OptionCount
	}
	return c
}
