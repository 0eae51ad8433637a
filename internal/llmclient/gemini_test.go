package llmclient

import (
	"testing"

	genai "google.golang.org/genai"
)

func TestGroundingChunksMapsWebEntries(t *testing.T) {
	md := &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://a", Title: "A"}},
			{}, // non-web chunk keeps its position but has no Web source
			nil,
			{Web: &genai.GroundingChunkWeb{URI: "https://b"}},
		},
	}

	got := groundingChunks(md)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks (nil entries skipped), got %d", len(got))
	}
	if got[0].Web == nil || got[0].Web.URI != "https://a" || got[0].Web.Title != "A" {
		t.Fatalf("first chunk mapped wrong: %+v", got[0].Web)
	}
	if got[1].Web != nil {
		t.Fatalf("non-web chunk should have nil Web, got %+v", got[1].Web)
	}
	if got[2].Web == nil || got[2].Web.URI != "https://b" || got[2].Web.Title != "" {
		t.Fatalf("untitled web chunk mapped wrong: %+v", got[2].Web)
	}
}

func TestGroundingChunksNilMetadata(t *testing.T) {
	if got := groundingChunks(nil); got != nil {
		t.Fatalf("expected nil for missing metadata, got %v", got)
	}
	if got := groundingChunks(&genai.GroundingMetadata{}); got != nil {
		t.Fatalf("expected nil for empty metadata, got %v", got)
	}
}
