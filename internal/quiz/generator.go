// Package quiz builds multiple-choice questions from leveled vocabulary.
package quiz

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/lexiz/internal/vocab"
)

// Question is one prompt with its shuffled options. Options contains
// CorrectAnswer exactly once.
type Question struct {
	Prompt        string
	CorrectAnswer string
	Options       []string
}

// Generator builds quizzes. It is not safe for concurrent use because
// it owns its random source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from the clock.
func NewGenerator(cfg Config) *Generator {
	seed := uint64(time.Now().UnixNano())
	return NewGeneratorWithRand(cfg, rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// NewGeneratorWithRand returns a generator using rng for every shuffle.
func NewGeneratorWithRand(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg.normalized(), rng: rng}
}

// Config returns the generator's effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds the quiz for levelID. The pool is every word up to and
// including the level, with the level's own words weighted; the pool is
// shuffled and cut to QuestionCount.
func (g *Generator) Generate(levelID int, levels []vocab.Level) ([]Question, error) {
	pool, err := BuildPool(levelID, levels, g.cfg.CurrentLevelWeight)
	if err != nil {
		return nil, err
	}

	Shuffle(g.rng, pool)
	if len(pool) > g.cfg.QuestionCount {
		pool = pool[:g.cfg.QuestionCount]
	}

	translations := allTranslations(levels)
	questions := make([]Question, 0, len(pool))
	for _, w := range pool {
		questions = append(questions, g.question(w, translations))
	}
	return questions, nil
}

// Length returns how many questions Generate produces for levelID, or 0
// for an unknown level.
func (g *Generator) Length(levelID int, levels []vocab.Level) int {
	pool, err := BuildPool(levelID, levels, g.cfg.CurrentLevelWeight)
	if err != nil {
		return 0
	}
	return min(len(pool), g.cfg.QuestionCount)
}

// BuildPool concatenates the words of every level with ID <= levelID in
// level order, then appends the target level's words weight-1 more times.
func BuildPool(levelID int, levels []vocab.Level, weight int) ([]vocab.WordPair, error) {
	var target *vocab.Level
	var pool []vocab.WordPair
	for i := range levels {
		if levels[i].ID > levelID {
			continue
		}
		pool = append(pool, levels[i].Words...)
		if levels[i].ID == levelID {
			target = &levels[i]
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %d", vocab.ErrUnknownLevel, levelID)
	}
	for i := 1; i < weight; i++ {
		pool = append(pool, target.Words...)
	}
	return pool, nil
}

// Shuffle permutes s in place with Fisher-Yates.
func Shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

func (g *Generator) question(w vocab.WordPair, translations []string) Question {
	candidates := make([]string, 0, len(translations))
	for _, t := range translations {
		if t != w.Translation {
			candidates = append(candidates, t)
		}
	}
	Shuffle(g.rng, candidates)

	n := g.cfg.OptionCount - 1
	if n > len(candidates) {
		n = len(candidates)
	}
	options := make([]string, 0, n+1)
	options = append(options, w.Translation)
	options = append(options, candidates[:n]...)
	Shuffle(g.rng, options)

	return Question{
		Prompt:        w.Term,
		CorrectAnswer: w.Translation,
		Options:       options,
	}
}

// allTranslations returns each distinct translation across all levels,
// in first-seen order.
func allTranslations(levels []vocab.Level) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, lvl := range levels {
		for _, w := range lvl.Words {
			if _, ok := seen[w.Translation]; ok {
				continue
			}
			seen[w.Translation] = struct{}{}
			out = append(out, w.Translation)
		}
	}
	return out
}
