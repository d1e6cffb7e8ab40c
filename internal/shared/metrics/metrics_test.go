package metrics

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderCountersAccumulate(t *testing.T) {
	started := renderStartedTotal.Load()
	completed := renderCompletedTotal.Load()
	failed := renderFailedTotal.Load()

	IncRenderStarted()
	IncRenderStarted()
	IncRenderCompleted()
	IncRenderFailed()

	out := Render()
	wants := []string{
		fmt.Sprintf("render_started_total %d", started+2),
		fmt.Sprintf("render_completed_total %d", completed+1),
		fmt.Sprintf("render_failed_total %d", failed+1),
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestObserveRenderDurationClampsNegative(t *testing.T) {
	before := renderDuration.Snapshot()
	ObserveRenderDurationMs(-10)
	after := renderDuration.Snapshot()
	if after.count != before.count+1 {
		t.Fatalf("count = %d, want %d", after.count, before.count+1)
	}
	if after.sum != before.sum {
		t.Fatalf("sum = %f, want unchanged %f", after.sum, before.sum)
	}
}

func TestRenderHistogramFormat(t *testing.T) {
	ObserveRenderDurationMs(12)
	out := Render()
	for _, want := range []string{
		"# TYPE render_duration_ms histogram",
		`render_duration_ms_bucket{le="+Inf"}`,
		"render_duration_ms_sum",
		"render_duration_ms_count",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
