package fastbreak

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task is one row of a batch: a typed fetch bound to its endpoint. Build
// tasks with NewTask; the zero Task is invalid and fails batch validation.
type Task struct {
	path string
	run  func(ctx context.Context, c *Client) (interface{}, error)
}

// NewTask wraps an endpoint for batch execution. The decoded result lands
// in the batch output slot as an interface value; assert it back to T.
func NewTask[T any](ep Endpoint[T]) Task {
	if ep == nil {
		return Task{}
	}
	return Task{
		path: ep.Path(),
		run: func(ctx context.Context, c *Client) (interface{}, error) {
			return Get(ctx, c, ep)
		},
	}
}

// GetAll executes tasks concurrently with bounded parallelism and returns
// their results indexed identically to the input: results[i] belongs to
// tasks[i], regardless of completion order.
//
// The batch is all-or-nothing. The first failure cancels every sibling
// cooperatively; the call then fails with a *BatchError carrying each
// individual failure observed before cancellation completed, and no partial
// result list is returned. An empty input succeeds trivially with no
// network activity.
func (c *Client) GetAll(ctx context.Context, tasks []Task) ([]interface{}, error) {
	if err := c.validationError; err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return []interface{}{}, nil
	}

	// Validate shape up front: a malformed task fails the whole batch
	// synchronously, before any network call.
	for i, t := range tasks {
		if t.run == nil {
			return nil, &ClientError{
				Type:    ErrorTypeValidation,
				Message: "batch contains an invalid task",
				Cause:   &TaskError{Index: i, Err: errors.New("nil task")},
			}
		}
	}

	if c.logger != nil {
		c.logger.Info("batch start", "tasks", len(tasks), "maxConcurrency", c.maxConcurrency)
	}
	if c.metrics != nil {
		c.metrics.RecordBatchStart(len(tasks))
	}

	// The engine's root context tears batches down on Close or on a
	// termination signal.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	detach := context.AfterFunc(c.rootCtx, cancel)
	defer detach()

	results := make([]interface{}, len(tasks))

	var mu sync.Mutex
	var taskErrs []*TaskError
	var completed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			if c.requestDelay > 0 {
				select {
				case <-time.After(c.requestDelay):
				case <-gctx.Done():
					return gctx.Err()
				}
			}

			v, err := t.run(gctx, c)
			if err != nil {
				if !isCancellation(err) {
					mu.Lock()
					taskErrs = append(taskErrs, &TaskError{Index: i, Err: err})
					mu.Unlock()
				}
				return err
			}

			mu.Lock()
			results[i] = v
			completed++
			done := completed
			mu.Unlock()

			if c.logger != nil {
				c.logger.Debug("batch progress", "completed", done, "total", len(tasks))
			}
			if c.metrics != nil {
				c.metrics.RecordBatchTask("success")
			}
			return nil
		})
	}

	waitErr := g.Wait()

	if len(taskErrs) > 0 {
		batchErr := newBatchError(taskErrs)
		if c.logger != nil {
			c.logger.Error("batch failed", "tasks", len(tasks), "failures", len(batchErr.Errors))
		}
		if c.metrics != nil {
			for range batchErr.Errors {
				c.metrics.RecordBatchTask("failure")
			}
			c.metrics.RecordBatchComplete("failure", len(tasks))
		}
		return nil, batchErr
	}
	if waitErr != nil {
		// Every failure was a cancellation from outside the batch.
		if c.metrics != nil {
			c.metrics.RecordBatchComplete("canceled", len(tasks))
		}
		return nil, &ClientError{
			Type:    ErrorTypeCanceled,
			Message: "batch canceled",
			Cause:   waitErr,
		}
	}

	if c.logger != nil {
		c.logger.Info("batch complete", "tasks", len(tasks))
	}
	if c.metrics != nil {
		c.metrics.RecordBatchComplete("success", len(tasks))
	}
	return results, nil
}

// All is the homogeneous convenience over GetAll: it fetches every endpoint
// of one response type and returns the typed results in input order.
func All[T any](ctx context.Context, c *Client, eps []Endpoint[T]) ([]T, error) {
	tasks := make([]Task, len(eps))
	for i, ep := range eps {
		tasks[i] = NewTask(ep)
	}

	raw, err := c.GetAll(ctx, tasks)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out, nil
}

func isCancellation(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrorTypeCanceled
}
