package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Stage
	}{
		{name: "new", input: "New", expected: StageNew},
		{name: "contacted", input: "Contacted", expected: StageContacted},
		{name: "in training", input: "In Training", expected: StageInTraining},
		{name: "licensed", input: "Licensed", expected: StageLicensed},
		{name: "inactive", input: "Inactive", expected: StageInactive},
		{name: "unknown value", input: "Pending Review", expected: StageUnknown},
		{name: "empty", input: "", expected: StageUnknown},
		{name: "case sensitive", input: "new", expected: StageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStage(tt.input))
		})
	}
}

func TestStage_Terminal(t *testing.T) {
	assert.True(t, StageLicensed.Terminal())
	assert.True(t, StageInactive.Terminal())

	assert.False(t, StageNew.Terminal())
	assert.False(t, StageContacted.Terminal())
	assert.False(t, StageInTraining.Terminal())
	assert.False(t, StageUnknown.Terminal())
}

func TestStage_Known(t *testing.T) {
	for _, stage := range Stages() {
		assert.True(t, stage.Known(), "stage %q should be known", stage)
	}
	assert.False(t, StageUnknown.Known())
	assert.False(t, Stage("Archived").Known())
}

func TestStages_DisplayOrder(t *testing.T) {
	assert.Equal(t, []Stage{
		StageNew, StageContacted, StageInTraining, StageLicensed, StageInactive,
	}, Stages())
}

func TestTerminalStages(t *testing.T) {
	terminal := TerminalStages()
	assert.Len(t, terminal, 2)
	for _, stage := range terminal {
		assert.True(t, stage.Terminal())
	}
}
