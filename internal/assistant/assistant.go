// Package assistant holds the two model-backed operations the app
// offers: latest match grades (web-grounded) and strategic team
// analysis (deep reasoning). Both are stateless single round trips.
package assistant

import (
	"context"
	"errors"
	"log"

	"fantassist/internal/llmclient"
	"fantassist/internal/prompt"
	"fantassist/internal/roster"
)

// Fixed user-facing errors. The underlying provider error is logged
// here and never shown to the user.
var (
	ErrGradesFetch = errors.New("impossibile recuperare i voti al momento")
	ErrAnalysis    = errors.New("impossibile analizzare la squadra al momento")
)

const (
	emptyRosterGradesText   = "Nessun giocatore nella lista."
	emptyRosterAnalysisText = "Aggiungi giocatori per ricevere un'analisi."
	noGradesText            = "Nessun risultato trovato."
	noAnalysisText          = "Impossibile generare l'analisi."
)

// Source is one clickable web citation backing a grades answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Grades is the normalized grades result: text plus zero or more web
// sources in provider order.
type Grades struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// Analysis is the normalized analysis result. No citations apply.
type Analysis struct {
	Text string `json:"text"`
}

type Service struct {
	llm llmclient.TextClient
}

func New(llm llmclient.TextClient) *Service {
	return &Service{llm: llm}
}

// FetchGrades asks for the latest match grades of every listed player.
// An empty roster yields a fixed placeholder without touching the
// network. Grounding chunks are filtered to web entries only.
func (s *Service) FetchGrades(ctx context.Context, players []roster.Player) (Grades, error) {
	p, err := prompt.Grades(players)
	if errors.Is(err, prompt.ErrEmptyRoster) {
		return Grades{Text: emptyRosterGradesText, Sources: []Source{}}, nil
	}
	if err != nil {
		return Grades{}, err
	}

	gen, err := s.llm.GenerateGrounded(ctx, p)
	if err != nil {
		log.Printf("fetch grades failed: %v", err)
		return Grades{}, ErrGradesFetch
	}

	text := gen.Text
	if text == "" {
		text = noGradesText
	}
	return Grades{Text: text, Sources: webSources(gen.Chunks)}, nil
}

// AnalyzeTeam asks the deep-reasoning model for a strategic review of
// the whole roster.
func (s *Service) AnalyzeTeam(ctx context.Context, players []roster.Player) (Analysis, error) {
	p, err := prompt.Analysis(players)
	if errors.Is(err, prompt.ErrEmptyRoster) {
		return Analysis{Text: emptyRosterAnalysisText}, nil
	}
	if err != nil {
		return Analysis{}, err
	}

	gen, err := s.llm.GenerateDeep(ctx, p)
	if err != nil {
		log.Printf("analyze team failed: %v", err)
		return Analysis{}, ErrAnalysis
	}

	text := gen.Text
	if text == "" {
		text = noAnalysisText
	}
	return Analysis{Text: text}, nil
}

// webSources keeps web-backed chunks only, in order. Always returns a
// non-nil slice so the JSON shape stays `sources: []`.
func webSources(chunks []llmclient.Chunk) []Source {
	out := []Source{}
	for _, c := range chunks {
		if c.Web == nil {
			continue
		}
		out = append(out, Source{URI: c.Web.URI, Title: c.Web.Title})
	}
	return out
}
