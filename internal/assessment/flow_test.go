package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Transition ---

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from Step
		ev   Event
		want Step
	}{
		{StepLanding, EventStart, StepPhase1},
		{StepPhase1, EventComplete, StepPhase2},
		{StepPhase2, EventComplete, StepPhase3},
		{StepPhase3, EventComplete, StepResult},
		{StepPhase1, EventBack, StepLanding},
		{StepPhase2, EventBack, StepPhase1},
		{StepPhase3, EventBack, StepPhase2},
		{StepResult, EventBack, StepPhase3},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			got, err := Transition(tt.from, tt.ev, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransition_ResetFromAnyStep(t *testing.T) {
	for _, s := range StepOrder {
		got, err := Transition(s, EventReset, "")
		require.NoError(t, err)
		assert.Equal(t, StepLanding, got)
	}
}

func TestTransition_Rejected(t *testing.T) {
	tests := []struct {
		from Step
		ev   Event
	}{
		{StepResult, EventComplete},
		{StepLanding, EventComplete},
		{StepLanding, EventBack},
		{StepPhase1, EventStart},
		{StepResult, EventStart},
		{Step("phase4"), EventComplete},
		{StepPhase2, Event("skip")},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			_, err := Transition(tt.from, tt.ev, "")
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestTransition_Modify(t *testing.T) {
	for _, target := range []Step{StepPhase1, StepPhase2, StepPhase3} {
		got, err := Transition(StepResult, EventModify, target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	}

	got, err := Transition(StepPhase3, EventModify, StepPhase1)
	require.NoError(t, err)
	assert.Equal(t, StepPhase1, got)

	_, err = Transition(StepPhase2, EventModify, StepPhase3)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cannot modify forward")

	_, err = Transition(StepPhase2, EventModify, StepPhase2)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Transition(StepResult, EventModify, StepLanding)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Transition(StepResult, EventModify, StepResult)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// --- ResumeStep ---

func TestResumeStep_Ladder(t *testing.T) {
	roi := ROIAssessment{}
	tests := []struct {
		name string
		a    *ClientAssessment
		want Step
	}{
		{"nil", nil, StepLanding},
		{"empty", &ClientAssessment{ClientID: "c"}, StepLanding},
		{"phase1", &ClientAssessment{Phase1: &PhaseOneAnswers{}}, StepPhase1},
		{"phase2", &ClientAssessment{Phase1: &PhaseOneAnswers{}, Phase2: &PhaseTwoAnswers{}}, StepPhase2},
		{"phase3", &ClientAssessment{Phase1: &PhaseOneAnswers{}, Phase2: &PhaseTwoAnswers{}, Phase3: &PhaseThreeAnswers{}}, StepPhase3},
		{"roi", &ClientAssessment{Phase1: &PhaseOneAnswers{}, Phase2: &PhaseTwoAnswers{}, Phase3: &PhaseThreeAnswers{}, ROIAssessment: &roi}, StepResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResumeStep(tt.a))
		})
	}
}

// --- Phase helpers ---

func TestStepOfPhase_RoundTrip(t *testing.T) {
	for n := 1; n <= 3; n++ {
		s, ok := StepOfPhase(n)
		require.True(t, ok)
		assert.Equal(t, n, PhaseOfStep(s))
	}
	_, ok := StepOfPhase(4)
	assert.False(t, ok, "phase 4 has no questionnaire")
	assert.Equal(t, 0, PhaseOfStep(StepResult))
}
