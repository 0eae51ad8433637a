package llmclient

import (
	"context"
	"sync"
)

// FakeClient returns canned generations for offline runs and tests.
// Calls are counted so tests can assert gating behavior.
type FakeClient struct {
	mu sync.Mutex

	GroundedGen Generation
	DeepGen     Generation
	Err         error

	// Block, when non-nil, is received from before a call returns so a
	// test can hold a request in flight.
	Block chan struct{}

	groundedCalls int
	deepCalls     int
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateGrounded(ctx context.Context, prompt string) (Generation, error) {
	f.mu.Lock()
	f.groundedCalls++
	block := f.Block
	gen, err := f.GroundedGen, f.Err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Generation{}, ctx.Err()
		}
	}
	return gen, err
}

func (f *FakeClient) GenerateDeep(ctx context.Context, prompt string) (Generation, error) {
	f.mu.Lock()
	f.deepCalls++
	block := f.Block
	gen, err := f.DeepGen, f.Err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return Generation{}, ctx.Err()
		}
	}
	return gen, err
}

func (f *FakeClient) GroundedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.groundedCalls
}

func (f *FakeClient) DeepCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deepCalls
}
