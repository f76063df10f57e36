package advisor

import "strings"

const PersonaPreamble = "Behave as a professional investment advisor. " +
	"Provide concise and straightforward responses, avoiding excessive jargon or unnecessary details. " +
	"Only provide relevant information related to the stock market, investment strategies, or financial forecasting."

const GreetingReply = "Hello! How can I assist you with your investment and financial planning today? " +
	"Feel free to ask any questions related to the stock market or investment strategies."

const MissingPromptReply = "Please provide a prompt."

const UnavailableReply = "The advisor is unavailable right now. Please try again later."

var greetings = map[string]bool{
	"hello": true,
	"hi":    true,
	"hey":   true,
}

// BuildPrompt wraps the raw user prompt in the advisor persona.
// The prompt is inserted verbatim.
func BuildPrompt(prompt string) string {
	return PersonaPreamble + "\n\n" + prompt
}

// IsGreeting reports whether prompt is exactly one of the greeting words,
// ignoring case and surrounding whitespace. Punctuation is not stripped.
func IsGreeting(prompt string) bool {
	return greetings[strings.ToLower(strings.TrimSpace(prompt))]
}
