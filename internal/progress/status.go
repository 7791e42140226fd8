package progress

// Status is a level's badge on the level grid.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	default:
		return "Not started"
	}
}

// StatusOf derives the badge from a level's record.
func StatusOf(p LevelProgress) Status {
	switch {
	case p.Completed:
		return StatusCompleted
	case p.Attempts > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Tier grades a single attempt for the results screen.
type Tier int

const (
	TierRetry   Tier = iota // < 60
	TierAlmost              // 60-69
	TierPass                // 70-79
	TierGreat               // 80-89
	TierPerfect             // >= 90
)

// Feedback is the message shown with an attempt's result.
type Feedback struct {
	Tier    Tier
	Passed  bool
	Message string
}

// FeedbackFor returns the feedback for an attempt percentage.
func FeedbackFor(pct int) Feedback {
	switch {
	case pct >= 90:
		return Feedback{TierPerfect, true, "🎉 Perfect! An outstanding result!"}
	case pct >= 80:
		return Feedback{TierGreat, true, "👏 Well done! Almost flawless!"}
	case pct >= PassThreshold:
		return Feedback{TierPass, true, "👍 Good! A little more effort and it will be perfect!"}
	case pct >= 60:
		return Feedback{TierAlmost, false, "📚 Not bad! Review the words and try again!"}
	default:
		return Feedback{TierRetry, false, "💪 Try again! Practice builds your vocabulary!"}
	}
}

// Band is the color band for a percentage.
type Band int

const (
	BandPoor Band = iota // < 60
	BandFair             // 60-79
	BandGood             // >= 80
)

// BandFor returns the color band for a percentage.
func BandFor(pct int) Band {
	switch {
	case pct >= 80:
		return BandGood
	case pct >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

// Badge returns the level icon: locked, completed or open.
func Badge(unlocked bool, p LevelProgress) string {
	switch {
	case !unlocked:
		return "🔒"
	case p.Completed:
		return "✅"
	default:
		return "📝"
	}
}
