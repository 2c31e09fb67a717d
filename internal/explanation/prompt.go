package explanation

import "fmt"

const systemPrompt = "You are a helpful and concise English and General Knowledge tutor. " +
	"A student answered a quiz question incorrectly. Explain why their answer was wrong " +
	"and why the correct answer is right in a friendly and easy-to-understand way. " +
	"Keep the explanation to 2-3 sentences."

const fallbackExplanation = "Sorry, I couldn't generate an explanation for this question."

func BuildUserPrompt(req ExplanationRequest) string {
	return fmt.Sprintf(
		"Question: %q\nMy Incorrect Answer: %q\nCorrect Answer: %q\n\nExplain my mistake.",
		req.Question, req.UserAnswer, req.CorrectAnswer,
	)
}
