package domain

import "time"

type HackID string

const (
	HackFullShipping       HackID = "ml_full_shipping"
	HackBundleKit          HackID = "ml_bundle_kit"
	HackSmartVariations    HackID = "ml_smart_variations"
	HackCategoryAdjustment HackID = "ml_category_adjustment"
	HackPsychologicalPrice HackID = "ml_psychological_pricing"
)

// HackIDs lista os hacks na ordem fixa de avaliação
var HackIDs = []HackID{
	HackFullShipping,
	HackBundleKit,
	HackSmartVariations,
	HackCategoryAdjustment,
	HackPsychologicalPrice,
}

func (id HackID) Valid() bool {
	for _, known := range HackIDs {
		if id == known {
			return true
		}
	}
	return false
}

type HackStatus string

const (
	HackStatusConfirmed HackStatus = "confirmed"
	HackStatusDismissed HackStatus = "dismissed"
)

func (s HackStatus) Valid() bool {
	return s == HackStatusConfirmed || s == HackStatusDismissed
}

type HackHistoryEntry struct {
	ID          string     `json:"id,omitempty"`
	ListingID   string     `json:"listing_id,omitempty"`
	HackID      HackID     `json:"hack_id"`
	Status      HackStatus `json:"status"`
	DismissedAt *time.Time `json:"dismissed_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}

type HackSuggestion struct {
	ID              HackID   `json:"id"`
	Title           string   `json:"title"`
	Summary         string   `json:"summary"`
	Why             []string `json:"why"`
	Impact          Level    `json:"impact"`
	Confidence      int      `json:"confidence"`
	ConfidenceLevel Level    `json:"confidence_level"`
	Evidence        []string `json:"evidence"`
}

type HackMeta struct {
	RulesEvaluated        int `json:"rules_evaluated"`
	RulesTriggered        int `json:"rules_triggered"`
	SkippedByHistory      int `json:"skipped_by_history"`
	SkippedByRequirements int `json:"skipped_by_requirements"`
}

// HackInput precisa do relógio explícito para a janela de cooldown
type HackInput struct {
	Signals Signals            `json:"signals"`
	History []HackHistoryEntry `json:"history"`
	NowUTC  time.Time          `json:"now_utc"`
}

type HackResult struct {
	Hacks []HackSuggestion `json:"hacks"`
	Meta  HackMeta         `json:"meta"`
}
