package notes

import (
	"fmt"
	"strings"

	"github.com/abhisek/lexiz/internal/session"
)

const systemPrompt = `You are a friendly French tutor for Korean speakers. A learner just finished a vocabulary quiz and needs quick study notes for the words they missed.`

func buildUserMessage(levelID int, missed []session.AnswerRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Level: %d\n", levelID)
	b.WriteString("\nMissed words:\n")
	for _, m := range missed {
		fmt.Fprintf(&b, "- %s = %s", m.Prompt, m.CorrectAnswer)
		if m.Chosen != "" {
			fmt.Fprintf(&b, " (learner chose %q)", m.Chosen)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
For each missed word write one note:
1. Copy the French word and Korean translation exactly as given.
2. Write one short French example sentence (under 12 words) a beginner could understand.
3. Translate the example into natural Korean.
4. Give a one-sentence memory tip in Korean. If the learner's wrong choice suggests a confusion, address it.
Keep the notes in the same order as the list above.`)

	return b.String()
}
