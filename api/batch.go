package api

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/sync/semaphore"

	"github.com/Caqil/scanpro-annotate/log"
	"github.com/Caqil/scanpro-annotate/model"
)

// BatchJob is one document to sign in a batch run.
type BatchJob struct {
	Path     string
	Elements []model.Element
	Pages    []model.PageMetadata
	Options  SignOptions
}

// BatchResult pairs a job with its outcome.
type BatchResult struct {
	Job    BatchJob
	Result *SignResult
	Err    error
}

// SignAll signs every job, with at most batchSize uploads in flight. Results
// are returned in job order; individual failures do not abort the batch.
func (c *Client) SignAll(ctx context.Context, jobs []BatchJob, batchSize int64) []BatchResult {
	if batchSize < 1 {
		batchSize = 1
	}

	results := make([]BatchResult, len(jobs))
	sem := semaphore.NewWeighted(batchSize)

	for i, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Trace.Printf("failed to acquire semaphore: %v", err)
			results[i] = BatchResult{Job: job, Err: err}
			continue
		}
		go func(i int, job BatchJob) {
			defer sem.Release(1)
			results[i] = BatchResult{Job: job}

			file, err := os.Open(job.Path)
			if err != nil {
				results[i].Err = err
				return
			}
			defer file.Close()

			res, err := c.Sign(ctx, filepath.Base(job.Path), file, job.Elements, job.Pages, job.Options)
			results[i].Result = res
			results[i].Err = err
		}(i, job)
	}

	// Wait for all uploads to finish.
	if err := sem.Acquire(context.Background(), batchSize); err != nil {
		log.Trace.Printf("failed to drain semaphore: %v", err)
	}

	return results
}
