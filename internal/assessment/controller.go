package assessment

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persistence is what the controller needs from its storage adapter.
// *Repository implements it.
type Persistence interface {
	Load() (*ClientAssessment, error)
	Save(a *ClientAssessment) error
	Clear() error
}

// ConsultationNotice is returned by ScheduleConsultation. Scheduling is
// not integrated with any calendar system.
const ConsultationNotice = "Consultation scheduling would integrate with your preferred calendar system. " +
	"For demo purposes, this shows the functionality is ready."

// Controller owns the assessment and the current flow step. Every
// successful transition is saved before it becomes visible, so the
// stored record and the in-memory one never diverge.
type Controller struct {
	mu     sync.Mutex
	repo   Persistence
	logger *zap.Logger
	newID  func() string

	step       Step
	assessment *ClientAssessment
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator overrides client id generation (uuid v4 by default).
func WithIDGenerator(gen func() string) Option {
	return func(c *Controller) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// NewController creates a controller and rehydrates any persisted
// assessment. A payload that cannot be read or decoded is logged and
// replaced by a fresh assessment at the landing step.
func NewController(repo Persistence, opts ...Option) *Controller {
	c := &Controller{
		repo:   repo,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rehydrate()
	return c
}

func (c *Controller) rehydrate() {
	saved, err := c.repo.Load()
	switch {
	case errors.Is(err, ErrMalformedState):
		c.logger.Warn("discarding unreadable saved assessment", zap.Error(err))
	case err != nil:
		c.logger.Error("loading saved assessment", zap.Error(err))
	case saved != nil:
		c.assessment = saved
		c.step = ResumeStep(saved)
		c.logger.Info("resumed assessment",
			zap.String("client_id", saved.ClientID),
			zap.String("step", string(c.step)),
		)
		return
	}
	c.assessment = NewClientAssessment(c.newID())
	c.step = StepLanding
}

// Step returns the current flow step.
func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

// Assessment returns a copy of the current assessment.
func (c *Controller) Assessment() *ClientAssessment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.assessment.Clone()
}

// Snapshot returns the current step and a copy of the assessment together.
func (c *Controller) Snapshot() (Step, *ClientAssessment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step, c.assessment.Clone()
}

// Start leaves the landing step for phase 1.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(EventStart, "", func(a *ClientAssessment) {
		a.CurrentPhase = 1
	})
}

// CompletePhaseOne stores the phase-1 answers and moves to phase 2.
func (c *Controller) CompletePhaseOne(answers PhaseOneAnswers) error {
	if err := answers.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StepPhase1); err != nil {
		return err
	}
	return c.apply(EventComplete, "", func(a *ClientAssessment) {
		a.Phase1 = &answers
		a.CurrentPhase = 2
	})
}

// CompletePhaseTwo stores the phase-2 answers and moves to phase 3.
func (c *Controller) CompletePhaseTwo(answers PhaseTwoAnswers) error {
	if err := answers.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StepPhase2); err != nil {
		return err
	}
	if c.assessment.Phase1 == nil {
		return fmt.Errorf("%w: phase 1 answers missing", ErrInvalidTransition)
	}
	answers = answers.clone()
	return c.apply(EventComplete, "", func(a *ClientAssessment) {
		a.Phase2 = &answers
		a.CurrentPhase = 3
	})
}

// CompletePhaseThree stores the phase-3 answers, classifies the budget,
// projects the ROI and moves to the result step. Phase 4 is skipped: the
// current phase jumps straight to 5.
func (c *Controller) CompletePhaseThree(answers PhaseThreeAnswers) error {
	if err := answers.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expect(StepPhase3); err != nil {
		return err
	}
	if c.assessment.Phase1 == nil || c.assessment.Phase2 == nil {
		return fmt.Errorf("%w: earlier phase answers missing", ErrInvalidTransition)
	}

	tier, ok := ClassifyTier(answers.BudgetRange)
	if !ok {
		c.logger.Info("budget below advisory threshold, defaulting tier",
			zap.String("budget", answers.BudgetRange),
			zap.String("tier", string(TierAdvisory)),
		)
		tier = TierAdvisory
	}
	roi := ProjectROI(c.assessment.Phase1, c.assessment.Phase2, &answers, tier)
	completedAt := timeNow()

	return c.apply(EventComplete, "", func(a *ClientAssessment) {
		a.Phase3 = &answers
		a.ServiceTier = &tier
		a.ROIAssessment = &roi
		a.CurrentPhase = 5
		a.CompletedAt = &completedAt
	})
}

// Back returns to the previous step. Answers are kept for prefill.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := Transition(c.step, EventBack, "")
	if err != nil {
		return err
	}
	return c.apply(EventBack, "", func(a *ClientAssessment) {
		if n := PhaseOfStep(next); n > 0 {
			a.CurrentPhase = n
		}
	})
}

// Modify jumps from a later step back to questionnaire phase n (1-3).
func (c *Controller) Modify(phase int) error {
	target, ok := StepOfPhase(phase)
	if !ok {
		return fmt.Errorf("%w: phase %d has no questionnaire", ErrInvalidTransition, phase)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(EventModify, target, func(a *ClientAssessment) {
		a.CurrentPhase = phase
	})
}

// Reset clears storage and starts over with a new client id.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.repo.Clear(); err != nil {
		return err
	}
	fresh := NewClientAssessment(c.newID())
	if err := c.repo.Save(fresh); err != nil {
		return err
	}
	c.logger.Info("assessment reset",
		zap.String("previous_client_id", c.assessment.ClientID),
		zap.String("client_id", fresh.ClientID),
	)
	c.assessment = fresh
	c.step = StepLanding
	return nil
}

// Report snapshots the assessment into an exportable report.
func (c *Controller) Report() Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewReport(c.assessment.Clone())
}

// ScheduleConsultation is a stub: it records nothing and returns the
// notice shown to the client.
func (c *Controller) ScheduleConsultation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger.Info("consultation requested", zap.String("client_id", c.assessment.ClientID))
	return ConsultationNotice
}

// expect guards phase-specific events against being sent from the wrong step.
func (c *Controller) expect(step Step) error {
	if c.step != step {
		return fmt.Errorf("%w: expected step %s, current step is %s", ErrInvalidTransition, step, c.step)
	}
	return nil
}

// apply runs one transition: compute the next step, mutate a copy,
// persist it, then publish. Callers hold c.mu.
func (c *Controller) apply(ev Event, target Step, mutate func(a *ClientAssessment)) error {
	next, err := Transition(c.step, ev, target)
	if err != nil {
		return err
	}

	updated := c.assessment.Clone()
	if mutate != nil {
		mutate(updated)
	}
	if err := c.repo.Save(updated); err != nil {
		return err
	}

	c.logger.Debug("assessment transition",
		zap.String("event", string(ev)),
		zap.String("from", string(c.step)),
		zap.String("to", string(next)),
		zap.Int("current_phase", updated.CurrentPhase),
	)
	c.assessment = updated
	c.step = next
	return nil
}
