package core

import "context"

type AIProvider interface {
	Chat(ctx context.Context, history []Message, tools []Tool) (Message, error)
}

// Classifier turns free text into a structured intent. Implementations
// wrap an external model; tests substitute a mock.
type Classifier interface {
	Classify(ctx context.Context, input string, recent []Entry) (Intent, error)
}
