// Package async runs order parsing off the request path: the gRPC surface
// enqueues raw text and a bounded worker pool drives the pipeline.
package async

import (
	"context"
	"time"
)

// Job is the smallest useful unit. Extend as needed later (tenant, retry,
// priority).
type Job struct {
	RawText     string
	Source      string // file path or channel label for logging
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
