package llmclient

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

const (
	// groundedModel answers the grades query with Google Search grounding.
	groundedModel = "gemini-2.5-flash"
	// deepModel runs the strategic analysis with thinking enabled.
	deepModel = "gemini-3-pro-preview"
	// deepThinkingBudget maximizes internal reasoning before the answer.
	deepThinkingBudget int32 = 32768
)

var ErrEmptyResponse = errors.New("provider returned no candidates")

// GeminiClient is a thin wrapper around the official genai client.
// It only focuses on the two API calls themselves; validation, result
// normalization and error mapping live in the assistant layer.
type GeminiClient struct {
	cli *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli}, nil
}

func (g *GeminiClient) Name() string { return "Gemini" }
func (g *GeminiClient) Close() error { return nil }

func (g *GeminiClient) GenerateGrounded(ctx context.Context, prompt string) (Generation, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, groundedModel,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		},
	)
	if err != nil {
		return Generation{}, err
	}
	if len(resp.Candidates) == 0 {
		return Generation{}, ErrEmptyResponse
	}
	return Generation{
		Text:   resp.Text(),
		Chunks: groundingChunks(resp.Candidates[0].GroundingMetadata),
	}, nil
}

func (g *GeminiClient) GenerateDeep(ctx context.Context, prompt string) (Generation, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, deepModel,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: genai.Ptr(deepThinkingBudget),
			},
		},
	)
	if err != nil {
		return Generation{}, err
	}
	if len(resp.Candidates) == 0 {
		return Generation{}, ErrEmptyResponse
	}
	return Generation{Text: resp.Text()}, nil
}

// groundingChunks maps the SDK's grounding metadata into the local
// Chunk shape. Missing metadata yields a nil slice.
func groundingChunks(md *genai.GroundingMetadata) []Chunk {
	if md == nil || len(md.GroundingChunks) == 0 {
		return nil
	}
	out := make([]Chunk, 0, len(md.GroundingChunks))
	for _, gc := range md.GroundingChunks {
		if gc == nil {
			continue
		}
		var web *WebSource
		if gc.Web != nil {
			web = &WebSource{URI: gc.Web.URI, Title: gc.Web.Title}
		}
		out = append(out, Chunk{Web: web})
	}
	return out
}
