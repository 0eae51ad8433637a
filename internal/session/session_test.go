package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fantassist/internal/assistant"
	"fantassist/internal/llmclient"
	"fantassist/internal/roster"
)

func newSession(t *testing.T, fake *llmclient.FakeClient, players ...string) (*Session, *roster.Store) {
	t.Helper()
	store := roster.NewStore()
	for _, name := range players {
		if _, ok := store.Add(name, roster.RoleForward); !ok {
			t.Fatalf("add %q rejected", name)
		}
	}
	return New(store, assistant.New(fake)), store
}

func waitForTerminal(t *testing.T, states <-chan State) State {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-states:
			if st.Status == StatusSuccess || st.Status == StatusFailed {
				return st
			}
		case <-deadline:
			t.Fatalf("no terminal state within deadline")
		}
	}
}

func TestStartGradesEmptyRosterSetsValidationMessage(t *testing.T) {
	fake := &llmclient.FakeClient{}
	sess, _ := newSession(t, fake)

	st := sess.StartGrades()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, "Aggiungi almeno un giocatore prima di cercare.", st.Message)
	assert.Zero(t, fake.GroundedCalls())
}

func TestStartAnalysisEmptyRosterSetsValidationMessage(t *testing.T) {
	fake := &llmclient.FakeClient{}
	sess, _ := newSession(t, fake)

	st := sess.StartAnalysis()
	assert.Equal(t, StatusIdle, st.Status)
	assert.Equal(t, "Aggiungi almeno un giocatore prima di analizzare.", st.Message)
	assert.Zero(t, fake.DeepCalls())
}

func TestOverlappingStartsIssueOneCall(t *testing.T) {
	fake := &llmclient.FakeClient{
		Block:       make(chan struct{}),
		GroundedGen: llmclient.Generation{Text: "Dybala: 7"},
	}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	st := sess.StartGrades()
	require.Equal(t, StatusFetchingGrades, st.Status)

	// Both triggers are disabled while the call is in flight.
	assert.Equal(t, StatusFetchingGrades, sess.StartGrades().Status)
	assert.Equal(t, StatusFetchingGrades, sess.StartAnalysis().Status)

	close(fake.Block)
	final := waitForTerminal(t, states)

	assert.Equal(t, StatusSuccess, final.Status)
	assert.Equal(t, 1, fake.GroundedCalls())
	assert.Zero(t, fake.DeepCalls())
}

func TestStartClearsPreviousResultsAndError(t *testing.T) {
	fake := &llmclient.FakeClient{
		GroundedGen: llmclient.Generation{Text: "Dybala: 7"},
		DeepGen:     llmclient.Generation{Text: "4-3-3"},
	}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	sess.StartGrades()
	first := waitForTerminal(t, states)
	require.NotNil(t, first.Grades)

	st := sess.StartAnalysis()
	assert.Equal(t, StatusFetchingAnalysis, st.Status)
	assert.Nil(t, st.Grades)
	assert.Nil(t, st.Analysis)
	assert.Empty(t, st.Message)

	second := waitForTerminal(t, states)
	require.NotNil(t, second.Analysis)
	assert.Nil(t, second.Grades)
}

func TestGradesFailureSetsFixedMessage(t *testing.T) {
	fake := &llmclient.FakeClient{Err: errors.New("network down")}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	sess.StartGrades()
	final := waitForTerminal(t, states)

	assert.Equal(t, StatusFailed, final.Status)
	assert.Equal(t, "Errore nel recupero dei voti. Riprova più tardi.", final.Message)
	assert.Nil(t, final.Grades)
	assert.Nil(t, final.Analysis)
}

func TestAnalysisFailureSetsFixedMessage(t *testing.T) {
	fake := &llmclient.FakeClient{Err: errors.New("network down")}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	sess.StartAnalysis()
	final := waitForTerminal(t, states)

	assert.Equal(t, StatusFailed, final.Status)
	assert.Equal(t, "Errore durante l'analisi strategica.", final.Message)
}

func TestRetryAfterFailure(t *testing.T) {
	fake := &llmclient.FakeClient{Err: errors.New("flaky")}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	sess.StartGrades()
	require.Equal(t, StatusFailed, waitForTerminal(t, states).Status)

	// The next attempt starts normally regardless of the prior outcome.
	fake.Err = nil
	fake.GroundedGen = llmclient.Generation{Text: "Dybala: 7"}
	st := sess.StartGrades()
	assert.Equal(t, StatusFetchingGrades, st.Status)
	assert.Empty(t, st.Message)

	final := waitForTerminal(t, states)
	assert.Equal(t, StatusSuccess, final.Status)
	require.NotNil(t, final.Grades)
	assert.Equal(t, "Dybala: 7", final.Grades.Text)
}

func TestAnalysisEndToEnd(t *testing.T) {
	fake := &llmclient.FakeClient{
		DeepGen: llmclient.Generation{Text: "Strengths: ... Formation: 4-3-3"},
	}
	sess, _ := newSession(t, fake, "Dybala")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	states := sess.Subscribe(ctx)

	sess.StartAnalysis()
	final := waitForTerminal(t, states)

	require.Equal(t, StatusSuccess, final.Status)
	require.NotNil(t, final.Analysis)
	assert.Equal(t, "Strengths: ... Formation: 4-3-3", final.Analysis.Text)
	assert.Nil(t, final.Grades)
}
