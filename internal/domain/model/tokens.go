package model

// EstimateTokens approximates the token count of a text as len/4. It is the
// single estimation point so a real tokenizer can replace it without touching
// orchestration code. Counts produced here are heuristic, not billing-grade.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// EstimateUsage builds a TokenUsage from prompt and completion text when the
// provider reported no usage of its own.
func EstimateUsage(prompt, completion string) TokenUsage {
	p := EstimateTokens(prompt)
	c := EstimateTokens(completion)
	return TokenUsage{Prompt: p, Completion: c, Total: p + c}
}
