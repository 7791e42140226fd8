package progress

import "math"

// Summary is the aggregate view shown on the home and progress screens.
type Summary struct {
	CompletedLevels int
	TotalLevels     int
	TotalCorrect    int
	TotalAttempts   int
	AverageScore    int // percent over all attempts, assuming full-length quizzes
	OverallPercent  int // completed / total levels
}

// Summarize aggregates the table. AverageScore divides by
// attempts*questionsPerQuiz, so short quizzes from small vocabularies
// pull the average down.
func Summarize(t Table, levelCount, questionsPerQuiz int) Summary {
	s := Summary{TotalLevels: levelCount}
	for _, p := range t {
		if p == nil {
			continue
		}
		if p.Completed {
			s.CompletedLevels++
		}
		s.TotalCorrect += p.TotalCorrect
		s.TotalAttempts += p.Attempts
	}
	if s.TotalAttempts > 0 && questionsPerQuiz > 0 {
		s.AverageScore = int(math.Round(100 * float64(s.TotalCorrect) / float64(s.TotalAttempts*questionsPerQuiz)))
	}
	if levelCount > 0 {
		s.OverallPercent = int(math.Round(100 * float64(s.CompletedLevels) / float64(levelCount)))
	}
	return s
}
