package aggregate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/use-agent/streamcat/config"
	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

func testRegistry(t *testing.T, ids ...string) *source.Registry {
	t.Helper()
	cfgs := make([]config.SourceConfig, 0, len(ids))
	for _, id := range ids {
		cfgs = append(cfgs, config.SourceConfig{
			ID:        id,
			Name:      "Source " + id,
			BaseURL:   "https://" + id + ".example.com",
			SearchURL: "https://" + id + ".example.com/search/{{query}}",
		})
	}
	reg, err := source.NewRegistry(cfgs)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

// extractorFunc adapts a function to the Extractor interface.
type extractorFunc func(ctx context.Context, src *source.Source, query string) models.Outcome

func (f extractorFunc) Search(ctx context.Context, src *source.Source, query string) models.Outcome {
	return f(ctx, src, query)
}

func TestSearch_IsolatesFailures(t *testing.T) {
	reg := testRegistry(t, "alpha", "beta", "gamma")

	ex := extractorFunc(func(_ context.Context, src *source.Source, _ string) models.Outcome {
		switch src.ID {
		case "alpha":
			return models.Outcome{Records: []models.Video{
				{Title: "a1", URL: "https://alpha.example.com/video/1", Source: src.Name},
			}}
		case "beta":
			return models.Fail(models.KindBlocked, "challenge page")
		default:
			return models.Fail(models.KindConnectionFailed, "dial tcp: timeout")
		}
	})

	results := New(reg, ex).Search(context.Background(), "q")

	if len(results) != 3 {
		t.Fatalf("got %d results, want one per source", len(results))
	}

	// Registration order, regardless of completion order.
	for i, wantID := range []string{"alpha", "beta", "gamma"} {
		if results[i].Source.ID != wantID {
			t.Errorf("results[%d].Source.ID = %q, want %q", i, results[i].Source.ID, wantID)
		}
	}

	if !results[0].Outcome.OK() {
		t.Errorf("alpha outcome = %v, want ok", results[0].Outcome.Err)
	}
	if results[1].Outcome.OK() || results[1].Outcome.Err.Kind != models.KindBlocked {
		t.Errorf("beta outcome = %+v, want blocked", results[1].Outcome)
	}
	if results[2].Outcome.OK() || results[2].Outcome.Err.Kind != models.KindConnectionFailed {
		t.Errorf("gamma outcome = %+v, want connection_failed", results[2].Outcome)
	}
}

func TestSearch_RunsConcurrently(t *testing.T) {
	reg := testRegistry(t, "one", "two")

	// Both extractors block until both have started. If the fan-out were
	// sequential this would deadlock; the test timeout would catch it.
	var started sync.WaitGroup
	started.Add(2)

	ex := extractorFunc(func(_ context.Context, _ *source.Source, _ string) models.Outcome {
		started.Done()
		started.Wait()
		return models.Fail(models.KindNoResults, "empty")
	})

	done := make(chan struct{})
	go func() {
		New(reg, ex).Search(context.Background(), "q")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("aggregate did not complete; extractors are not concurrent")
	}
}

func TestSearch_PanicBecomesConnectionFailed(t *testing.T) {
	reg := testRegistry(t, "stable", "buggy")

	ex := extractorFunc(func(_ context.Context, src *source.Source, _ string) models.Outcome {
		if src.ID == "buggy" {
			panic("nil dereference in strategy")
		}
		return models.Outcome{Records: []models.Video{
			{Title: "ok", URL: "https://stable.example.com/v/1"},
		}}
	})

	results := New(reg, ex).Search(context.Background(), "q")

	if !results[0].Outcome.OK() {
		t.Errorf("stable source affected by sibling panic: %v", results[0].Outcome.Err)
	}
	out := results[1].Outcome
	if out.OK() || out.Err.Kind != models.KindConnectionFailed {
		t.Fatalf("buggy outcome = %+v, want connection_failed", out)
	}
}

func TestSearch_EmptyRegistry(t *testing.T) {
	reg := testRegistry(t)
	ex := extractorFunc(func(_ context.Context, _ *source.Source, _ string) models.Outcome {
		t.Fatal("extractor called with no sources")
		return models.Outcome{}
	})

	results := New(reg, ex).Search(context.Background(), "q")
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
