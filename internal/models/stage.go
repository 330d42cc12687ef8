package models

import "time"

// Stage is a recruit's position in the recruiting pipeline. The database
// stores it as plain text, so values outside the known vocabulary parse to
// StageUnknown rather than failing.
type Stage string

const (
	StageNew        Stage = "New"
	StageContacted  Stage = "Contacted"
	StageInTraining Stage = "In Training"
	StageLicensed   Stage = "Licensed"
	StageInactive   Stage = "Inactive"
	StageUnknown    Stage = "Unknown"
)

// FollowUpWindow is how long a recruit may go without contact before they
// are considered overdue. The threshold is strict: exactly 72 hours since
// last contact is still current.
const FollowUpWindow = 72 * time.Hour

// Stages returns the known pipeline vocabulary in display order.
func Stages() []Stage {
	return []Stage{StageNew, StageContacted, StageInTraining, StageLicensed, StageInactive}
}

func ParseStage(s string) Stage {
	for _, stage := range Stages() {
		if s == string(stage) {
			return stage
		}
	}
	return StageUnknown
}

func (s Stage) Known() bool {
	return ParseStage(string(s)) != StageUnknown
}

// Terminal stages are closed out of the follow-up workflow entirely.
func (s Stage) Terminal() bool {
	return s == StageLicensed || s == StageInactive
}

// TerminalStages returns the stages excluded from overdue consideration,
// for use in query filters.
func TerminalStages() []Stage {
	return []Stage{StageLicensed, StageInactive}
}
