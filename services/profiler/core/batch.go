package core

import (
	"context"
	"sync"

	"github.com/sitelens/website-profiler/pkg/interfaces"
	"github.com/sitelens/website-profiler/pkg/models"
)

// BatchEngine profiles many URLs concurrently with a bounded worker
// pool. Result order always matches input order.
type BatchEngine struct {
	builder     interfaces.ProfileBuilder
	workerCount int
	logger      interfaces.Logger
}

func NewBatchEngine(builder interfaces.ProfileBuilder, workerCount int, logger interfaces.Logger) *BatchEngine {
	if workerCount < 1 {
		workerCount = 1
	}
	return &BatchEngine{
		builder:     builder,
		workerCount: workerCount,
		logger:      logger,
	}
}

var _ interfaces.BatchProfiler = (*BatchEngine)(nil)

// ProfileAll analyzes every URL and returns one profile per input, in
// input order. Workers write into disjoint slice slots, so results need
// no locking. AnalyzeURL absorbs fetch errors (including context
// cancellation) into empty profiles, so the pool always drains.
func (b *BatchEngine) ProfileAll(ctx context.Context, urls []string) []models.WebsiteProfile {
	results := make([]models.WebsiteProfile, len(urls))
	if len(urls) == 0 {
		return results
	}

	workers := min(b.workerCount, len(urls))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = *b.builder.AnalyzeURL(ctx, urls[i])
			}
		}()
	}

	for i := range urls {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	b.logger.Info("Batch profiling complete", "urls", len(urls), "workers", workers)
	return results
}
