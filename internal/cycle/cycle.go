package cycle

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State is the phase of the current generation cycle.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

var (
	// ErrEmptyIdea rejects a blank or whitespace-only product idea
	// before any outbound call is made.
	ErrEmptyIdea = errors.New("product idea must not be empty")

	// ErrBusy rejects a second start while a request is in flight.
	ErrBusy = errors.New("a generation is already in progress")
)

// Slot holds the single current generation cycle. There is exactly one
// writer (the running cycle); all fields are replaced wholesale when a
// new cycle begins.
type Slot struct {
	mu sync.Mutex

	id       string
	state    State
	idea     string
	document string
	title    string
	errMsg   string

	startedAt  time.Time
	finishedAt time.Time
}

func NewSlot() *Slot {
	return &Slot{state: StateIdle}
}

// Begin admits a new cycle. The idea must be non-empty after trimming and
// no cycle may currently be requesting. On success the slot's previous
// result is discarded and the new cycle ID is returned.
func (s *Slot) Begin(idea string) (string, error) {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return "", ErrEmptyIdea
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRequesting {
		return "", ErrBusy
	}

	s.id = uuid.NewString()
	s.state = StateRequesting
	s.idea = trimmed
	s.document = ""
	s.title = ""
	s.errMsg = ""
	s.startedAt = time.Now()
	s.finishedAt = time.Time{}
	return s.id, nil
}

// Succeed records the extracted document and moves to StateSucceeded.
func (s *Slot) Succeed(document, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateSucceeded
	s.document = document
	s.title = title
	s.finishedAt = time.Now()
}

// Fail records the user-facing failure message and moves to StateFailed.
func (s *Slot) Fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.errMsg = msg
	s.finishedAt = time.Now()
}

// Idea returns the trimmed idea of the current cycle.
func (s *Slot) Idea() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idea
}

// Document returns the last generated document, if any.
func (s *Slot) Document() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document, s.document != ""
}

// Snapshot is a read-only, JSON-safe copy of the slot state. It carries
// no document body.
type Snapshot struct {
	ID          string `json:"cycle_id,omitempty"`
	State       State  `json:"state"`
	Idea        string `json:"idea,omitempty"`
	Title       string `json:"title,omitempty"`
	Error       string `json:"error,omitempty"`
	HasDocument bool   `json:"has_document"`

	StartedAt  string `json:"started_at,omitempty"`
	FinishedAt string `json:"finished_at,omitempty"`
}

func (s *Slot) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:          s.id,
		State:       s.state,
		Idea:        s.idea,
		Title:       s.title,
		Error:       s.errMsg,
		HasDocument: s.document != "",
	}
	if !s.startedAt.IsZero() {
		snap.StartedAt = s.startedAt.Format(time.RFC3339)
	}
	if !s.finishedAt.IsZero() {
		snap.FinishedAt = s.finishedAt.Format(time.RFC3339)
	}
	return snap
}
