// Package prompt renders the roster into the two natural-language
// prompts sent to the model. Both builders are pure; neither touches
// the network.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"fantassist/internal/roster"
)

// ErrEmptyRoster is returned by both builders when there are no
// players to write about. Callers short-circuit before any API call.
var ErrEmptyRoster = errors.New("empty roster")

// Grades builds the web-search prompt asking for the latest Gazzetta
// match grades of every listed player.
func Grades(players []roster.Player) (string, error) {
	if len(players) == 0 {
		return "", ErrEmptyRoster
	}

	entries := make([]string, 0, len(players))
	for _, p := range players {
		entries = append(entries, fmt.Sprintf("%s (%s)", p.Name, p.Role))
	}

	var b strings.Builder
	b.WriteString("Cerca i voti (pagelle) della Gazzetta dello Sport per l'ultima giornata di Serie A giocata per questi giocatori del fantacalcio:\n")
	b.WriteString(strings.Join(entries, ", "))
	b.WriteString(".\n\n")
	b.WriteString("Per ogni giocatore, indica chiaramente:\n")
	b.WriteString("1. Il Voto base (se ha giocato).\n")
	b.WriteString("2. Eventuali bonus/malus (gol, assist, ammonizioni) se menzionati.\n")
	b.WriteString("3. Se non ha giocato o ha preso S.V. (Senza Voto).\n\n")
	b.WriteString("Sii conciso e preciso. Presenta i risultati in una lista leggibile.")
	return b.String(), nil
}

// Analysis builds the deep-reasoning prompt asking for a strategic
// review of the whole roster rather than per-player grades.
func Analysis(players []roster.Player) (string, error) {
	if len(players) == 0 {
		return "", ErrEmptyRoster
	}

	var list strings.Builder
	for _, p := range players {
		fmt.Fprintf(&list, "- %s (%s)\n", p.Name, p.Role)
	}

	var b strings.Builder
	b.WriteString("Agisci come un esperto allenatore di Serie A e analista di Fantacalcio.\n")
	b.WriteString("Analizza la seguente rosa:\n")
	b.WriteString(list.String())
	b.WriteString("\n")
	b.WriteString("Usa la tua profonda conoscenza calcistica per:\n")
	b.WriteString("1. Identificare i punti di forza della squadra.\n")
	b.WriteString("2. Identificare le debolezze o i rischi (es. titolarità incerta, propensione ai cartellini).\n")
	b.WriteString("3. Consigliare il modulo migliore (es. 3-4-3, 4-3-3) basato su questi giocatori.\n")
	b.WriteString("4. Fornire una previsione sul potenziale complessivo della squadra per il campionato.\n\n")
	b.WriteString("Rifletti attentamente sulle sinergie tra i giocatori e le loro attuali condizioni generali.")
	return b.String(), nil
}
