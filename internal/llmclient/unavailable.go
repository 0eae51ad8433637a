package llmclient

import "context"

// Unavailable stands in when no usable client could be constructed
// (typically a missing API key). Construction succeeds at startup and
// the stored error surfaces only when a call is actually attempted.
type Unavailable struct {
	Reason error
}

func (u *Unavailable) Name() string { return "Unavailable" }
func (u *Unavailable) Close() error { return nil }

func (u *Unavailable) GenerateGrounded(ctx context.Context, prompt string) (Generation, error) {
	return Generation{}, u.Reason
}

func (u *Unavailable) GenerateDeep(ctx context.Context, prompt string) (Generation, error) {
	return Generation{}, u.Reason
}
