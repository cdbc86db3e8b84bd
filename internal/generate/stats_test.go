package generate

import (
	"testing"
	"time"
)

func TestStatsSnapshotPercentiles(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(100)
	stats.Record(200)
	stats.Record(300)
	stats.Record(400)
	stats.Record(500)

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count=5, got %d", snap.Count)
	}
	if snap.MinMs != 100 {
		t.Fatalf("expected min=100, got %d", snap.MinMs)
	}
	if snap.MaxMs != 500 {
		t.Fatalf("expected max=500, got %d", snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Fatalf("expected avg=300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Fatalf("expected p50=300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Fatalf("expected p95=480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Fatalf("expected p99=496, got %f", snap.P99Ms)
	}
}

func TestStatsPrunesExpiredSamples(t *testing.T) {
	stats := NewStats(50 * time.Millisecond)
	stats.Record(100)
	time.Sleep(100 * time.Millisecond)
	stats.Record(200)

	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected 1 sample after pruning, got %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Fatalf("expected surviving sample 200, got %d", snap.MinMs)
	}
}

func TestStatsEmptySnapshot(t *testing.T) {
	stats := NewStats(time.Hour)
	snap := stats.Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.AvgMs != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestStatsFailureCounters(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.RecordFailure()
	stats.RecordFailure()
	stats.RecordParseFailure()

	snap := stats.Snapshot()
	if snap.Failures != 2 {
		t.Errorf("expected 2 failures, got %d", snap.Failures)
	}
	if snap.ParseFailures != 1 {
		t.Errorf("expected 1 parse failure, got %d", snap.ParseFailures)
	}
}

func TestStatsNegativeDurationClamped(t *testing.T) {
	stats := NewStats(time.Hour)
	stats.Record(-5)
	snap := stats.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected negative duration clamped to 0, got %d", snap.MinMs)
	}
}
