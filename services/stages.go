// Package services contains the pure business logic of the CRM: pipeline
// stage derivation, financial totals, grouping, quote building and the
// supporting formatting helpers. Nothing in this package performs I/O
// unless it takes the app as an argument.
package services

// PipelineStages is the fixed, ordered sales process. Every pipeline record
// starts at the first entry and is only ever interpreted against this list;
// transition legality is not enforced here.
var PipelineStages = []string{
	"Lead ID",
	"Discovery",
	"Sample",
	"Validation",
	"Proposal",
	"Confirmation",
	"Closed",
}

// StagesRequiringBusinessDetails lists the stages at which business_model,
// unit and unit_price must be filled in before a record may be saved.
var StagesRequiringBusinessDetails = []string{"Validation", "Proposal", "Confirmation", "Closed"}

// StageRank returns the zero-based position of a stage in PipelineStages,
// or -1 when the stage is unknown. Unknown stages can arrive from the
// backend (stale data, forward-incompatible values) and must not crash
// callers.
func StageRank(stage string) int {
	for i, s := range PipelineStages {
		if s == stage {
			return i
		}
	}
	return -1
}

// IsValidStage reports whether stage is one of the registry values.
func IsValidStage(stage string) bool {
	return StageRank(stage) >= 0
}

// StageRequiresBusinessDetails reports whether the given stage requires
// business model, unit and unit price.
func StageRequiresBusinessDetails(stage string) bool {
	for _, s := range StagesRequiringBusinessDetails {
		if s == stage {
			return true
		}
	}
	return false
}

// StageProgress maps a stage to a 0-100 completion percentage using
// "stage entered" semantics: the first stage already counts as one step in,
// so it yields 100/len rather than 0, and the terminal stage yields exactly
// 100. Unknown stages yield 0.
func StageProgress(stage string) float64 {
	rank := StageRank(stage)
	if rank < 0 {
		return 0
	}
	return float64(rank+1) / float64(len(PipelineStages)) * 100
}

// StageBadgeClass returns the badge color class used when rendering a stage.
func StageBadgeClass(stage string) string {
	switch stage {
	case "Lead ID":
		return "badge-ghost"
	case "Discovery":
		return "badge-info"
	case "Sample":
		return "badge-accent"
	case "Validation":
		return "badge-warning"
	case "Proposal":
		return "badge-primary"
	case "Confirmation":
		return "badge-secondary"
	case "Closed":
		return "badge-success"
	default:
		return "badge-ghost"
	}
}
