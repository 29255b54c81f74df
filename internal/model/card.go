package model

// Card is a question/answer pair. Cards are never mutated after creation.
type Card struct {
	Question string
	Answer   string
}

// DefaultCards returns the deck a fresh session starts with.
func DefaultCards() []Card {
	return []Card{
		{Question: "What is the capital of France?", Answer: "Paris"},
		{Question: "What is 2 + 2?", Answer: "4"},
		{Question: `Who wrote "Romeo and Juliet"?`, Answer: "William Shakespeare"},
	}
}
