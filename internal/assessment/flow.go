package assessment

import (
	"errors"
	"fmt"
)

// --- State machine for the assessment flow ---
//
// landing --start--> phase1 --complete--> phase2 --complete--> phase3
// --complete--> result. Back walks one step towards landing without
// discarding answers, modify jumps from a later step to an earlier data
// phase, and reset returns to landing from anywhere.

// Step is a position in the assessment flow.
type Step string

const (
	StepLanding Step = "landing"
	StepPhase1  Step = "phase1"
	StepPhase2  Step = "phase2"
	StepPhase3  Step = "phase3"
	StepResult  Step = "result"
)

// StepOrder lists the steps from first to last.
var StepOrder = []Step{StepLanding, StepPhase1, StepPhase2, StepPhase3, StepResult}

// Event is a user action that drives the flow.
type Event string

const (
	EventStart    Event = "start"
	EventComplete Event = "complete"
	EventBack     Event = "back"
	EventModify   Event = "modify"
	EventReset    Event = "reset"
)

// ErrInvalidTransition is returned for an event the current step does not accept.
var ErrInvalidTransition = errors.New("invalid transition")

// transitions holds every fixed (step, event) pair. Modify and reset are
// handled in Transition because their target is not fixed by the table.
var transitions = map[Step]map[Event]Step{
	StepLanding: {
		EventStart: StepPhase1,
	},
	StepPhase1: {
		EventComplete: StepPhase2,
		EventBack:     StepLanding,
	},
	StepPhase2: {
		EventComplete: StepPhase3,
		EventBack:     StepPhase1,
	},
	StepPhase3: {
		EventComplete: StepResult,
		EventBack:     StepPhase2,
	},
	StepResult: {
		EventBack: StepPhase3,
	},
}

// StepIndex returns the ordinal position of a step, or -1 if unknown.
func StepIndex(s Step) int {
	for i, known := range StepOrder {
		if s == known {
			return i
		}
	}
	return -1
}

// Transition returns the step reached from `from` on event ev. target is
// only read for EventModify and must be a data phase before `from`.
func Transition(from Step, ev Event, target Step) (Step, error) {
	if StepIndex(from) < 0 {
		return "", fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, from)
	}

	switch ev {
	case EventReset:
		return StepLanding, nil
	case EventModify:
		if PhaseOfStep(target) == 0 {
			return "", fmt.Errorf("%w: cannot modify %q, must be phase1, phase2 or phase3", ErrInvalidTransition, target)
		}
		if StepIndex(target) >= StepIndex(from) || from == StepLanding {
			return "", fmt.Errorf("%w: cannot modify %s from %s", ErrInvalidTransition, target, from)
		}
		return target, nil
	}

	next, ok := transitions[from][ev]
	if !ok {
		return "", fmt.Errorf("%w: %s does not accept %s", ErrInvalidTransition, from, ev)
	}
	return next, nil
}

// PhaseOfStep returns the questionnaire number (1-3) of a data step, or 0.
func PhaseOfStep(s Step) int {
	switch s {
	case StepPhase1:
		return 1
	case StepPhase2:
		return 2
	case StepPhase3:
		return 3
	default:
		return 0
	}
}

// StepOfPhase returns the data step of questionnaire phase n (1-3).
func StepOfPhase(n int) (Step, bool) {
	switch n {
	case 1:
		return StepPhase1, true
	case 2:
		return StepPhase2, true
	case 3:
		return StepPhase3, true
	default:
		return "", false
	}
}

// ResumeStep picks the step a rehydrated assessment resumes at. The
// ladder re-enters the latest completed phase rather than the next one.
func ResumeStep(a *ClientAssessment) Step {
	switch {
	case a == nil:
		return StepLanding
	case a.ROIAssessment != nil:
		return StepResult
	case a.Phase3 != nil:
		return StepPhase3
	case a.Phase2 != nil:
		return StepPhase2
	case a.Phase1 != nil:
		return StepPhase1
	default:
		return StepLanding
	}
}
