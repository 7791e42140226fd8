package session

import "slices"

// SelectOption highlights option without committing it. Reselecting is
// allowed until commit. Returns false when ignored: after reveal, once
// complete, or when option is not one of the current question's options.
func SelectOption(state *SessionState, option string) bool {
	if state.Phase != PhaseAwaitingAnswer && state.Phase != PhaseAnswerSelected {
		return false
	}
	q := state.CurrentQuestion()
	if q == nil || !slices.Contains(q.Options, option) {
		return false
	}
	state.Selected = option
	state.Phase = PhaseAnswerSelected
	return true
}

// SelectIndex highlights the i-th (0-based) option of the current question.
func SelectIndex(state *SessionState, i int) bool {
	q := state.CurrentQuestion()
	if q == nil || i < 0 || i >= len(q.Options) {
		return false
	}
	return SelectOption(state, q.Options[i])
}

// Commit scores the selected option and reveals the answer. It is a
// no-op without a selection.
func Commit(state *SessionState) (Reveal, bool) {
	if state.Phase != PhaseAnswerSelected || state.Selected == "" {
		return Reveal{}, false
	}
	q := state.CurrentQuestion()
	correct := state.Selected == q.CorrectAnswer
	if correct {
		state.Score++
	}
	state.LastAnswerCorrect = correct
	state.Answers = append(state.Answers, AnswerRecord{
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		Chosen:        state.Selected,
		Correct:       correct,
	})
	state.Phase = PhaseAnswerRevealed
	state.revealSeq++

	return Reveal{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Ticket:        Ticket{SessionID: state.SessionID, Seq: state.revealSeq},
	}, true
}

// Advance moves past a revealed answer. Tickets from another session or
// an earlier reveal are ignored. done reports that the last question was
// passed and the session is now complete.
func Advance(state *SessionState, t Ticket) (done bool, ok bool) {
	if state.Phase != PhaseAnswerRevealed ||
		t.SessionID != state.SessionID || t.Seq != state.revealSeq {
		return false, false
	}
	state.CurrentIndex++
	state.Selected = ""
	if state.CurrentIndex >= len(state.Questions) {
		state.Phase = PhaseCompleted
		return true, true
	}
	state.Phase = PhaseAwaitingAnswer
	return false, true
}
