package services

import "time"

// Pipeline is the in-memory view of one sales opportunity record, mapped
// from storage by the handlers. Amount and UnitPrice are pointers because
// "not entered" and "zero" are different things to the financial deriver.
type Pipeline struct {
	ID             string
	CustomerID     string
	ChemicalTypeID string
	TdsID          string

	Stage string

	Amount    *float64
	Unit      string
	UnitPrice *float64
	Currency  string

	ExpectedCloseDate time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	CloseReason    string
	LeadSource     string
	ContactPerLead string

	BusinessModel string
	BusinessUnit  string
	Forex         string
	Incoterm      string

	Metadata       map[string]any
	AIInteractions []AIInteraction
}

// AIInteraction is one entry of the append-only conversation log carried on
// a pipeline record.
type AIInteraction struct {
	ID         string `json:"id"`
	Timestamp  string `json:"timestamp"`
	UserInput  string `json:"user_input"`
	AIResponse string `json:"ai_response"`
}

// StageChange is one entry of the stage_history list kept in a pipeline's
// metadata.
type StageChange struct {
	FromStage     string `json:"from_stage"`
	ToStage       string `json:"to_stage"`
	ChangedAt     string `json:"changed_at"`
	Justification string `json:"justification,omitempty"`
}

// StageHistory extracts the stage_history entries from a pipeline's
// metadata. Entries that are not shaped like a stage change are skipped.
// Returns an empty slice when the metadata carries no history.
func (p Pipeline) StageHistory() []StageChange {
	if p.Metadata == nil {
		return nil
	}
	raw, ok := p.Metadata["stage_history"].([]any)
	if !ok {
		return nil
	}
	var history []StageChange
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		change := StageChange{}
		if v, ok := m["from_stage"].(string); ok {
			change.FromStage = v
		}
		if v, ok := m["to_stage"].(string); ok {
			change.ToStage = v
		}
		if v, ok := m["changed_at"].(string); ok {
			change.ChangedAt = v
		}
		if v, ok := m["justification"].(string); ok {
			change.Justification = v
		}
		history = append(history, change)
	}
	return history
}

// AppendStageChange returns a copy of the pipeline's metadata with the given
// stage change appended to stage_history. The original map is not mutated.
func (p Pipeline) AppendStageChange(change StageChange) map[string]any {
	meta := make(map[string]any, len(p.Metadata)+1)
	for k, v := range p.Metadata {
		meta[k] = v
	}
	var history []any
	if existing, ok := meta["stage_history"].([]any); ok {
		history = append(history, existing...)
	}
	history = append(history, map[string]any{
		"from_stage":    change.FromStage,
		"to_stage":      change.ToStage,
		"changed_at":    change.ChangedAt,
		"justification": change.Justification,
	})
	meta["stage_history"] = history
	return meta
}
