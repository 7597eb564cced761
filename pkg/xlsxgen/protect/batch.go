package protect

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DeriveAll derives a descriptor for every password keyed by an arbitrary
// label, running at most GOMAXPROCS chains at once. The first error
// cancels the remaining work. d.Rand must be safe for concurrent use.
func (d Deriver) DeriveAll(ctx context.Context, passwords map[string]string) (map[string]*Descriptor, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	out := make(map[string]*Descriptor, len(passwords))
	for label, password := range passwords {
		g.Go(func() error {
			desc, err := d.DeriveContext(ctx, password)
			if err != nil {
				return err
			}
			mu.Lock()
			out[label] = desc
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
