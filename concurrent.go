package translateplus

import (
	"context"
	"sync"
)

// ConcurrentResult is one slot of a TranslateConcurrent result. Exactly one
// of Translation and Err is set.
type ConcurrentResult struct {
	Translation *Translation
	Err         error
}

// concurrentConfig holds settings for concurrent translation.
type concurrentConfig struct {
	maxWorkers int
}

// ConcurrentOption configures TranslateConcurrent.
type ConcurrentOption func(*concurrentConfig)

// WithMaxWorkers bounds the number of simultaneously executing
// translations. Defaults to the client's configured max concurrency.
func WithMaxWorkers(n int) ConcurrentOption {
	return func(c *concurrentConfig) {
		if n > 0 {
			c.maxWorkers = n
		}
	}
}

// TranslateConcurrent translates texts in parallel, one request per text,
// with at most maxWorkers in flight. Results are positionally aligned with
// the input regardless of completion order; a failed item carries its
// error in that slot and does not affect its siblings.
func (c *Client) TranslateConcurrent(ctx context.Context, texts []string, source, target string, opts ...ConcurrentOption) ([]ConcurrentResult, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}

	cfg := &concurrentConfig{maxWorkers: c.MaxConcurrent()}
	for _, opt := range opts {
		opt(cfg)
	}

	results := make([]ConcurrentResult, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := make(chan struct{}, cfg.maxWorkers)
	var wg sync.WaitGroup

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			workers <- struct{}{}
			defer func() { <-workers }()

			translation, err := c.Translate(ctx, text, source, target)
			if err != nil {
				results[i] = ConcurrentResult{Err: err}
				return
			}
			results[i] = ConcurrentResult{Translation: translation}
		}(i, text)
	}

	wg.Wait()
	return results, nil
}
