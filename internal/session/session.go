package session

import (
	"context"
	"sync"

	"fantassist/internal/assistant"
	"fantassist/internal/roster"
)

// User-facing Italian copy, fixed per request type.
const (
	validateGradesMessage   = "Aggiungi almeno un giocatore prima di cercare."
	validateAnalysisMessage = "Aggiungi almeno un giocatore prima di analizzare."
	failGradesMessage       = "Errore nel recupero dei voti. Riprova più tardi."
	failAnalysisMessage     = "Errore durante l'analisi strategica."
)

// Fetcher is the assistant surface the session drives.
type Fetcher interface {
	FetchGrades(ctx context.Context, players []roster.Player) (assistant.Grades, error)
	AnalyzeTeam(ctx context.Context, players []roster.Player) (assistant.Analysis, error)
}

// Session serializes state transitions and guarantees at most one
// outstanding provider call. A second trigger while fetching is simply
// rejected, never queued, and there is no user-visible cancellation:
// an in-flight call runs to completion.
type Session struct {
	roster  *roster.Store
	fetcher Fetcher

	mu      sync.Mutex
	state   State
	nextSub int
	subs    map[int]chan State
}

func New(store *roster.Store, fetcher Fetcher) *Session {
	return &Session{
		roster:  store,
		fetcher: fetcher,
		state:   State{Status: StatusIdle},
		subs:    make(map[int]chan State),
	}
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel that receives a state snapshot after
// every change. The subscription ends when ctx is done. Slow receivers
// miss intermediate snapshots rather than blocking transitions.
func (s *Session) Subscribe(ctx context.Context) <-chan State {
	ch := make(chan State, 8)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(ch)
	}()
	return ch
}

// StartGrades begins the grades request and returns the state after
// the transition. No-op while a request is in flight; with an empty
// roster it only sets the validation message.
func (s *Session) StartGrades() State {
	return s.start(
		validateGradesMessage,
		StartGrades{},
		func(players []roster.Player) {
			res, err := s.fetcher.FetchGrades(context.Background(), players)
			if err != nil {
				s.apply(RequestFailed{Message: failGradesMessage})
				return
			}
			s.apply(GradesFetched{Result: res})
		},
	)
}

// StartAnalysis begins the analysis request, symmetrically.
func (s *Session) StartAnalysis() State {
	return s.start(
		validateAnalysisMessage,
		StartAnalysis{},
		func(players []roster.Player) {
			res, err := s.fetcher.AnalyzeTeam(context.Background(), players)
			if err != nil {
				s.apply(RequestFailed{Message: failAnalysisMessage})
				return
			}
			s.apply(AnalysisReady{Result: res})
		},
	)
}

func (s *Session) start(validationMsg string, ev Event, run func(players []roster.Player)) State {
	s.mu.Lock()
	if s.state.Fetching() {
		st := s.state
		s.mu.Unlock()
		return st
	}
	players := s.roster.Players()
	if len(players) == 0 {
		s.state = Reduce(s.state, Rejected{Message: validationMsg})
		st := s.state
		s.mu.Unlock()
		s.broadcast(st)
		return st
	}
	s.state = Reduce(s.state, ev)
	st := s.state
	s.mu.Unlock()

	s.broadcast(st)
	go run(players)
	return st
}

func (s *Session) apply(ev Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, ev)
	st := s.state
	s.mu.Unlock()
	s.broadcast(st)
}

func (s *Session) broadcast(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- st:
		default:
		}
	}
}
