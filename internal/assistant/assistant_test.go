package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantassist/internal/llmclient"
	"fantassist/internal/roster"
)

var dybala = []roster.Player{{ID: "1", Name: "Dybala", Role: roster.RoleForward}}

func TestFetchGradesFiltersWebChunks(t *testing.T) {
	fake := &llmclient.FakeClient{
		GroundedGen: llmclient.Generation{
			Text: "Dybala: 7",
			Chunks: []llmclient.Chunk{
				{Web: &llmclient.WebSource{URI: "https://a", Title: "A"}},
				{}, // no web field, must be dropped
			},
		},
	}
	svc := New(fake)

	got, err := svc.FetchGrades(context.Background(), dybala)
	require.NoError(t, err)
	assert.Equal(t, "Dybala: 7", got.Text)
	require.Len(t, got.Sources, 1)
	assert.Equal(t, Source{URI: "https://a", Title: "A"}, got.Sources[0])
}

func TestFetchGradesEmptyTextFallback(t *testing.T) {
	fake := &llmclient.FakeClient{GroundedGen: llmclient.Generation{Text: ""}}
	svc := New(fake)

	got, err := svc.FetchGrades(context.Background(), dybala)
	require.NoError(t, err)
	assert.Equal(t, "Nessun risultato trovato.", got.Text)
	assert.Empty(t, got.Sources)
	assert.NotNil(t, got.Sources)
}

func TestFetchGradesEmptyRosterSkipsNetwork(t *testing.T) {
	fake := &llmclient.FakeClient{}
	svc := New(fake)

	got, err := svc.FetchGrades(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Nessun giocatore nella lista.", got.Text)
	assert.Zero(t, fake.GroundedCalls())
}

func TestFetchGradesProviderFailure(t *testing.T) {
	fake := &llmclient.FakeClient{Err: errors.New("boom")}
	svc := New(fake)

	_, err := svc.FetchGrades(context.Background(), dybala)
	require.ErrorIs(t, err, ErrGradesFetch)
	// The raw provider error must not leak through the returned error.
	assert.NotContains(t, err.Error(), "boom")
}

func TestAnalyzeTeamSuccess(t *testing.T) {
	fake := &llmclient.FakeClient{
		DeepGen: llmclient.Generation{Text: "Strengths: ... Formation: 4-3-3"},
	}
	svc := New(fake)

	got, err := svc.AnalyzeTeam(context.Background(), dybala)
	require.NoError(t, err)
	assert.Equal(t, "Strengths: ... Formation: 4-3-3", got.Text)
	assert.Equal(t, 1, fake.DeepCalls())
	assert.Zero(t, fake.GroundedCalls())
}

func TestAnalyzeTeamEmptyRosterSkipsNetwork(t *testing.T) {
	fake := &llmclient.FakeClient{}
	svc := New(fake)

	got, err := svc.AnalyzeTeam(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Aggiungi giocatori per ricevere un'analisi.", got.Text)
	assert.Zero(t, fake.DeepCalls())
}

func TestAnalyzeTeamEmptyTextFallback(t *testing.T) {
	fake := &llmclient.FakeClient{DeepGen: llmclient.Generation{Text: ""}}
	svc := New(fake)

	got, err := svc.AnalyzeTeam(context.Background(), dybala)
	require.NoError(t, err)
	assert.Equal(t, "Impossibile generare l'analisi.", got.Text)
}

func TestAnalyzeTeamProviderFailure(t *testing.T) {
	fake := &llmclient.FakeClient{Err: errors.New("quota exceeded")}
	svc := New(fake)

	_, err := svc.AnalyzeTeam(context.Background(), dybala)
	require.ErrorIs(t, err, ErrAnalysis)
}
