package hacking

import (
	"time"

	"github.com/fernando-m-vale/superseller-ia-sub001/internal/domain"
)

// CooldownWindow é o período em que um hack dispensado não volta a ser sugerido
const CooldownWindow = 30 * 24 * time.Hour

type historyState struct {
	confirmed       bool
	lastDismissedAt *time.Time
}

// historyIndex indexa o histórico por hack uma única vez por avaliação
type historyIndex map[domain.HackID]historyState

func newHistoryIndex(entries []domain.HackHistoryEntry) historyIndex {
	index := make(historyIndex, len(entries))
	for _, entry := range entries {
		state := index[entry.HackID]
		switch entry.Status {
		case domain.HackStatusConfirmed:
			state.confirmed = true
		case domain.HackStatusDismissed:
			if entry.DismissedAt != nil && (state.lastDismissedAt == nil || entry.DismissedAt.After(*state.lastDismissedAt)) {
				dismissedAt := *entry.DismissedAt
				state.lastDismissedAt = &dismissedAt
			}
		}
		index[entry.HackID] = state
	}
	return index
}

// suppressed: confirmado suprime para sempre; dispensado suprime enquanto now-dismissedAt < 30 dias
func (h historyIndex) suppressed(id domain.HackID, nowUTC time.Time) bool {
	state, ok := h[id]
	if !ok {
		return false
	}
	if state.confirmed {
		return true
	}
	if state.lastDismissedAt == nil {
		return false
	}
	return nowUTC.Sub(*state.lastDismissedAt) < CooldownWindow
}
