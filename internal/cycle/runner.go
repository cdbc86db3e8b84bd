package cycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pagesmith/internal/generate"
)

// ErrGenerationFailed is the uniform user-facing failure for any
// transport or service error. The underlying detail is logged, never
// surfaced; only an extraction failure keeps its specific message.
var ErrGenerationFailed = errors.New("generation could not be completed")

// Runner drives one generation cycle end to end: prompt, one completion
// call, extraction, slot update.
type Runner struct {
	client generate.Client
	slot   *Slot
	stats  *generate.Stats
	log    *slog.Logger
}

func NewRunner(client generate.Client, stats *generate.Stats, log *slog.Logger) *Runner {
	return &Runner{
		client: client,
		slot:   NewSlot(),
		stats:  stats,
		log:    log,
	}
}

// Result is the outcome of a succeeded cycle.
type Result struct {
	CycleID  string
	Document string
	Title    string
}

// Generate runs a full cycle for the given idea. Admission errors
// (ErrEmptyIdea, ErrBusy) are returned before any outbound call.
func (r *Runner) Generate(ctx context.Context, idea string) (Result, error) {
	id, err := r.slot.Begin(idea)
	if err != nil {
		return Result{}, err
	}

	log := r.log.With("cycle_id", id)
	prompt := generate.BuildPrompt(r.slot.Idea())

	start := time.Now()
	raw, err := r.client.Complete(ctx, prompt)
	if err != nil {
		r.stats.RecordFailure()
		log.Error("completion failed", "model", r.client.Model(), "error", err)
		r.slot.Fail(ErrGenerationFailed.Error())
		return Result{}, ErrGenerationFailed
	}
	r.stats.Record(time.Since(start).Milliseconds())

	doc, err := generate.ExtractDocument(raw)
	if err != nil {
		r.stats.RecordParseFailure()
		log.Warn("reply had no document", "reply_bytes", len(raw))
		r.slot.Fail(err.Error())
		return Result{}, err
	}

	title := generate.DocumentTitle(doc)
	r.slot.Succeed(doc, title)
	log.Info("generation complete", "title", title, "document_bytes", len(doc))
	return Result{CycleID: id, Document: doc, Title: title}, nil
}

// Snapshot returns the current cycle state.
func (r *Runner) Snapshot() Snapshot {
	return r.slot.Snapshot()
}

// Document returns the last generated document, if any.
func (r *Runner) Document() (string, bool) {
	return r.slot.Document()
}

// Stats returns the generation call statistics.
func (r *Runner) Stats() *generate.Stats {
	return r.stats
}

// Model returns the backing model identifier.
func (r *Runner) Model() string {
	return r.client.Model()
}
