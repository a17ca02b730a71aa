// Package corpus runs error injection over many sentences in parallel and
// collects the (error, correction) pairs.
package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/generrate"
)

// Pair is one corrupted sentence with the sentence it came from.
type Pair struct {
	// Index is the position of the sentence in the input.
	Index     int
	Correct   *generrate.Sentence
	Erroneous *generrate.Sentence
}

// Summary counts the outcomes of a run.
type Summary struct {
	Total    int            `json:"total"`
	Injected int            `json:"injected"`
	Failed   map[string]int `json:"failed"` // by failure kind
}

// Result holds the pairs in input order and the run summary.
type Result struct {
	Pairs   []Pair
	Summary Summary
}

// Driver injects one kind of error into every sentence of a corpus.
type Driver struct {
	injector *generrate.Injector
	workers  int
	metrics  *Metrics
	logger   *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithWorkers sets the number of sentences processed concurrently.
func WithWorkers(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithMetrics records outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(d *Driver) { d.metrics = m }
}

// WithLogger sets the logger for skipped sentences.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// NewDriver returns a Driver using inj.
func NewDriver(inj *generrate.Injector, opts ...Option) *Driver {
	d := &Driver{injector: inj, workers: 1, logger: slog.Default()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type outcome struct {
	out    *generrate.Sentence
	reason string
}

// Run injects a source->target substitution into each sentence. Sentences
// where no error can be created are counted and skipped. Any other error,
// or ctx being cancelled, stops the run.
func (d *Driver) Run(ctx context.Context, sentences []*generrate.Sentence, source, target string) (*Result, error) {
	kind := generrate.ErrorKind(source, target)
	outcomes := make([]outcome, len(sentences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, s := range sentences {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := d.injector.Inject(s, source, target)
			switch {
			case err == nil:
				outcomes[i] = outcome{out: out}
				d.metrics.Injected(kind)
			case generrate.IsCannotCreate(err):
				reason := generrate.FailureKind(err)
				outcomes[i] = outcome{reason: reason}
				d.metrics.Failed(kind, reason)
				d.logger.Debug("sentence skipped",
					slog.Int("index", i),
					slog.String("kind", kind),
					slog.String("error", err.Error()),
				)
			default:
				return fmt.Errorf("sentence %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}

	res := &Result{Summary: Summary{Total: len(sentences), Failed: make(map[string]int)}}
	for i, o := range outcomes {
		if o.out == nil {
			res.Summary.Failed[o.reason]++
			continue
		}
		res.Pairs = append(res.Pairs, Pair{Index: i, Correct: sentences[i], Erroneous: o.out})
		res.Summary.Injected++
	}

	d.logger.Info("corpus run finished",
		slog.String("kind", kind),
		slog.Int("total", res.Summary.Total),
		slog.Int("injected", res.Summary.Injected),
	)
	return res, nil
}
