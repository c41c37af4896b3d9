package patterns

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Pattern Pattern
	Words   []uint32
	Err     error
}

// GenerateAsync generates p on its own goroutine. The returned channel yields
// exactly one Result and is then closed.
func GenerateAsync(p Pattern) <-chan Result {
	var resultChan = make(chan Result, 1)
	go func() {
		defer close(resultChan)
		words, err := p.Generate()
		resultChan <- Result{Pattern: p, Words: words, Err: err}
	}()
	return resultChan
}

// GenerateAll generates every pattern concurrently. Results are returned in
// request order. The first failure cancels patterns not yet started.
func GenerateAll(ctx context.Context, requested []Pattern) ([]Result, error) {
	var results = make([]Result, len(requested))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range requested {
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			words, err := requested[i].Generate()
			results[i] = Result{Pattern: requested[i], Words: words, Err: err}
			return err
		})
	}
	if err := group.Wait(); err != nil {
		log.WithError(err).Error("Generate all")
		return results, err
	}
	return results, nil
}
