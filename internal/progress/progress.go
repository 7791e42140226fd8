// Package progress tracks per-level mastery across quiz attempts.
package progress

import (
	"math"
	"sort"
)

// PassThreshold is the percentage a single attempt needs to complete a level.
const PassThreshold = 70

// DefaultLevelCount is the table size used when nothing is stored yet.
const DefaultLevelCount = 20

// LevelProgress is the running record for one level.
type LevelProgress struct {
	Completed    bool `json:"completed"`
	BestScore    int  `json:"bestScore"`
	Attempts     int  `json:"attempts"`
	TotalCorrect int  `json:"totalCorrect"`
}

// Table maps level ID to its progress. It is persisted as a whole.
type Table map[int]*LevelProgress

// NewTable returns a table with zeroed entries for levels 1..n.
func NewTable(n int) Table {
	t := make(Table, n)
	for id := 1; id <= n; id++ {
		t[id] = &LevelProgress{}
	}
	return t
}

// Get returns the entry for levelID, or a zero value if absent.
func (t Table) Get(levelID int) LevelProgress {
	if p, ok := t[levelID]; ok && p != nil {
		return *p
	}
	return LevelProgress{}
}

// LevelIDs returns the table's level IDs in ascending order.
func (t Table) LevelIDs() []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Percentage returns round(100*score/total), or 0 when total is 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

// Record folds one completed attempt into the table and returns the
// updated entry. Completed is set on a passing attempt and never cleared.
func Record(t Table, levelID, score, total int) *LevelProgress {
	p, ok := t[levelID]
	if !ok || p == nil {
		p = &LevelProgress{}
		t[levelID] = p
	}
	p.Attempts++
	p.TotalCorrect += score
	if score > p.BestScore {
		p.BestScore = score
	}
	if Percentage(score, total) >= PassThreshold {
		p.Completed = true
	}
	return p
}

// Unlocked reports whether levelID can be played. Level 1 always can;
// any other level needs the previous one completed.
func Unlocked(t Table, levelID int) bool {
	if levelID <= 1 {
		return levelID == 1
	}
	return t.Get(levelID - 1).Completed
}

// HighestUnlocked returns the largest playable level ID up to maxLevel.
func HighestUnlocked(t Table, maxLevel int) int {
	highest := 1
	for id := 2; id <= maxLevel; id++ {
		if !Unlocked(t, id) {
			break
		}
		highest = id
	}
	return highest
}
