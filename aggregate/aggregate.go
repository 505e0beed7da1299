package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/use-agent/streamcat/models"
	"github.com/use-agent/streamcat/source"
)

// Extractor is the per-source search contract the aggregator fans out over.
type Extractor interface {
	Search(ctx context.Context, src *source.Source, query string) models.Outcome
}

// Result pairs a source with its extraction outcome.
type Result struct {
	Source  *source.Source
	Outcome models.Outcome
}

// Aggregator fans a query out to every registered source concurrently.
// Each source succeeds or fails independently; one source's failure never
// affects another's outcome.
type Aggregator struct {
	registry  *source.Registry
	extractor Extractor
}

// New creates an Aggregator over the given registry and extractor.
func New(registry *source.Registry, extractor Extractor) *Aggregator {
	return &Aggregator{registry: registry, extractor: extractor}
}

// Search runs every source's extractor concurrently and returns one Result
// per source in registration order. The call returns only once every
// source has settled; there is no partial return and no aggregate timeout
// beyond each extractor's own fetch deadline.
func (a *Aggregator) Search(ctx context.Context, query string) []Result {
	sources := a.registry.All()
	results := make([]Result, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		results[i].Source = src
		wg.Add(1)
		go func(i int, src *source.Source) {
			defer wg.Done()
			// A buggy extractor must degrade to a per-source failure,
			// never take down the whole aggregate.
			defer func() {
				if r := recover(); r != nil {
					slog.Error("extractor panicked", "source", src.ID, "panic", r)
					results[i].Outcome = models.Fail(models.KindConnectionFailed,
						fmt.Sprintf("extractor fault: %v", r))
				}
			}()
			results[i].Outcome = a.extractor.Search(ctx, src, query)
		}(i, src)
	}
	wg.Wait()

	return results
}
