package ai

import "fmt"

// therapistPromptTemplate scopes the model to mental-health topics. The user
// text is embedded verbatim.
const therapistPromptTemplate = `
You are a compassionate therapist bot.
You ONLY respond to mental health, emotional, or wellbeing issues.
User mood score: %d.
Respond empathetically to: '%s'.
If the user asks unrelated questions, gently guide them back to mental-health topics.
`

// BuildPrompt renders the fixed therapist prompt for one completion call.
func BuildPrompt(userText string, moodScore int) string {
	return fmt.Sprintf(therapistPromptTemplate, moodScore, userText)
}
