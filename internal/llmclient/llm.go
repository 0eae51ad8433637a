package llmclient

import "context"

// WebSource is one web citation attached to a grounded answer.
type WebSource struct {
	URI   string
	Title string
}

// Chunk is a single grounding entry. Web is nil for non-web chunks;
// callers filter rather than branching on SDK-specific optional fields.
type Chunk struct {
	Web *WebSource
}

// Generation is the normalized provider output: the generated text and,
// for grounded calls, whatever grounding chunks came back with it.
type Generation struct {
	Text   string
	Chunks []Chunk
}

// TextClient is the surface the assistant talks to. Both operations are
// single non-retried round trips; cross-cutting concerns stay out of
// the client.
type TextClient interface {
	Name() string

	// GenerateGrounded answers with web-search grounding enabled and
	// returns citation chunks alongside the text.
	GenerateGrounded(ctx context.Context, prompt string) (Generation, error)

	// GenerateDeep answers with the high-capability reasoning model and
	// a large fixed thinking budget. No grounding applies.
	GenerateDeep(ctx context.Context, prompt string) (Generation, error)

	Close() error
}
