package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/assessor/internal/storage"
)

// StateKey is the fixed key the assessment is stored under.
const StateKey = "constitutional-assessment"

// ErrMalformedState wraps a decode failure of the persisted payload.
var ErrMalformedState = errors.New("malformed persisted assessment")

// Repository loads and saves the single assessment record. It performs
// no merging: Save replaces whatever was stored.
type Repository struct {
	store storage.Store
}

// NewRepository creates a repository on top of a key-value store.
func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// Load returns the persisted assessment, or (nil, nil) when nothing is
// stored. Undecodable payloads return an error wrapping ErrMalformedState.
func (r *Repository) Load() (*ClientAssessment, error) {
	data, err := r.store.Get(StateKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading assessment: %w", err)
	}

	var a ClientAssessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	if a.ClientID == "" {
		return nil, fmt.Errorf("%w: missing clientId", ErrMalformedState)
	}
	// The id names exported report files.
	if strings.ContainsAny(a.ClientID, `/\`) || strings.Contains(a.ClientID, "..") {
		return nil, fmt.Errorf("%w: invalid clientId %q", ErrMalformedState, a.ClientID)
	}
	return &a, nil
}

// Save replaces the persisted assessment.
func (r *Repository) Save(a *ClientAssessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling assessment: %w", err)
	}
	if err := r.store.Set(StateKey, data); err != nil {
		return fmt.Errorf("writing assessment: %w", err)
	}
	return nil
}

// Clear removes the persisted assessment.
func (r *Repository) Clear() error {
	if err := r.store.Delete(StateKey); err != nil {
		return fmt.Errorf("clearing assessment: %w", err)
	}
	return nil
}
