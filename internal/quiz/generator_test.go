package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lexiz/internal/vocab"
)

func testLevels(n, words int) []vocab.Level {
	levels := make([]vocab.Level, n)
	for i := range levels {
		id := i + 1
		levels[i] = vocab.Level{ID: id, Theme: fmt.Sprintf("theme-%d", id)}
		for j := 0; j < words; j++ {
			levels[i].Words = append(levels[i].Words, vocab.WordPair{
				Term:        fmt.Sprintf("t%d-%d", id, j),
				Translation: fmt.Sprintf("tr%d-%d", id, j),
			})
		}
	}
	return levels
}

func testGenerator(seed uint64) *Generator {
	return NewGeneratorWithRand(DefaultConfig(), rand.New(rand.NewPCG(seed, seed+1)))
}

func TestBuildPoolWeightsCurrentLevel(t *testing.T) {
	levels := testLevels(3, 10)

	pool, err := BuildPool(2, levels, 3)
	require.NoError(t, err)

	// level 1 once, level 2 three times
	if len(pool) != 40 {
		t.Errorf("len(pool) = %d, want 40", len(pool))
	}
	counts := map[string]int{}
	for _, w := range pool {
		counts[w.Term]++
	}
	assert.Equal(t, 1, counts["t1-0"])
	assert.Equal(t, 3, counts["t2-0"])
	assert.Equal(t, 0, counts["t3-0"])
}

func TestBuildPoolLevelOneSmall(t *testing.T) {
	levels := testLevels(1, 10)
	g := testGenerator(1)

	qs, err := g.Generate(1, levels)
	require.NoError(t, err)
	if len(qs) != 30 {
		t.Errorf("len(questions) = %d, want 30", len(qs))
	}
}

func TestGenerateCapsAtQuestionCount(t *testing.T) {
	levels := testLevels(5, 20)
	g := testGenerator(2)

	qs, err := g.Generate(5, levels)
	require.NoError(t, err)
	if len(qs) != 50 {
		t.Errorf("len(questions) = %d, want 50", len(qs))
	}
}

func TestGenerateDrawsOnlyFromUnlockedLevels(t *testing.T) {
	levels := testLevels(4, 10)
	g := testGenerator(3)

	qs, err := g.Generate(2, levels)
	require.NoError(t, err)
	allowed := map[string]bool{}
	for _, lvl := range levels[:2] {
		for _, w := range lvl.Words {
			allowed[w.Term] = true
		}
	}
	for _, q := range qs {
		if !allowed[q.Prompt] {
			t.Errorf("prompt %q drawn from a level above 2", q.Prompt)
		}
	}
}

func TestQuestionOptions(t *testing.T) {
	levels := testLevels(3, 10)
	g := testGenerator(4)

	qs, err := g.Generate(3, levels)
	require.NoError(t, err)
	for _, q := range qs {
		require.Len(t, q.Options, 4)
		n := 0
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				n++
			}
		}
		if n != 1 {
			t.Errorf("question %q has correct answer %d times, want 1", q.Prompt, n)
		}
		unique := slices.Clone(q.Options)
		slices.Sort(unique)
		if len(slices.Compact(unique)) != 4 {
			t.Errorf("question %q has duplicate options %v", q.Prompt, q.Options)
		}
	}
}

func TestDistractorsMayComeFromAnyLevel(t *testing.T) {
	levels := []vocab.Level{
		{ID: 1, Words: []vocab.WordPair{{Term: "a", Translation: "A"}}},
		{ID: 2, Words: []vocab.WordPair{{Term: "b", Translation: "B"}, {Term: "c", Translation: "C"}, {Term: "d", Translation: "D"}}},
	}
	g := testGenerator(5)

	qs, err := g.Generate(1, levels)
	require.NoError(t, err)
	require.Len(t, qs, 3)
	assert.ElementsMatch(t, []string{"A", "B", "C", "D"}, qs[0].Options)
}

func TestFewerThanThreeDistractors(t *testing.T) {
	levels := []vocab.Level{
		{ID: 1, Words: []vocab.WordPair{{Term: "a", Translation: "A"}, {Term: "b", Translation: "B"}}},
	}
	g := testGenerator(6)

	qs, err := g.Generate(1, levels)
	require.NoError(t, err)
	for _, q := range qs {
		if len(q.Options) != 2 {
			t.Errorf("len(options) = %d, want 2", len(q.Options))
		}
	}
}

func TestSharedTranslationNeverDistractor(t *testing.T) {
	levels := []vocab.Level{
		{ID: 1, Words: []vocab.WordPair{
			{Term: "la voiture", Translation: "차"},
			{Term: "l'auto", Translation: "차"},
			{Term: "le thé", Translation: "차 (음료)"},
		}},
	}
	g := testGenerator(7)

	qs, err := g.Generate(1, levels)
	require.NoError(t, err)
	for _, q := range qs {
		if q.CorrectAnswer == "차" {
			assert.ElementsMatch(t, []string{"차", "차 (음료)"}, q.Options)
		}
	}
}

func TestGenerateUnknownLevel(t *testing.T) {
	g := testGenerator(8)
	_, err := g.Generate(7, testLevels(3, 5))
	if !errors.Is(err, vocab.ErrUnknownLevel) {
		t.Errorf("err = %v, want ErrUnknownLevel", err)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := slices.Clone(in)

	Shuffle(rng, got)

	sorted := slices.Clone(got)
	slices.Sort(sorted)
	assert.Equal(t, in, sorted)
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	levels := testLevels(3, 10)
	a, err := testGenerator(11).Generate(3, levels)
	require.NoError(t, err)
	b, err := testGenerator(11).Generate(3, levels)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLength(t *testing.T) {
	g := testGenerator(12)
	levels := testLevels(5, 10)

	assert.Equal(t, 30, g.Length(1, levels))
	assert.Equal(t, 50, g.Length(3, levels))
	assert.Equal(t, 0, g.Length(9, levels))

	qs, err := g.Generate(1, levels)
	require.NoError(t, err)
	assert.Len(t, qs, g.Length(1, levels))
}
