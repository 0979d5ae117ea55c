package showdown

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/poker"
)

const (
	defaultBatchSize = 1024
	maxLineBytes     = 1 << 20
)

// Runner ranks line-oriented input. Lines are evaluated concurrently in
// batches, and results are emitted in input order.
type Runner struct {
	Workers   int         // <= 0 means runtime.NumCPU()
	Policy    ErrorPolicy // empty means Abort
	Parse     ParseFunc   // nil means poker.ParseHand
	BatchSize int         // <= 0 means 1024
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Summary counts what a run did.
type Summary struct {
	Lines   int // non-blank lines read
	Ranked  int
	Ties    int
	Failed  int // bad lines passed on under Report
	Skipped int // bad lines dropped under Skip
	Elapsed time.Duration

	// Categories counts ranked lines by winning category.
	Categories map[poker.Category]int
}

// Add folds other into s.
func (s *Summary) Add(other Summary) {
	s.Lines += other.Lines
	s.Ranked += other.Ranked
	s.Ties += other.Ties
	s.Failed += other.Failed
	s.Skipped += other.Skipped
	s.Elapsed += other.Elapsed
	for c, n := range other.Categories {
		if s.Categories == nil {
			s.Categories = make(map[poker.Category]int)
		}
		s.Categories[c] += n
	}
}

// EmitFunc receives each result in input order. Returning an error stops the run.
type EmitFunc func(Result) error

// Run reads lines from in until EOF, ctx cancellation, or a fatal error.
func (r *Runner) Run(ctx context.Context, in io.Reader, emit EmitFunc) (Summary, error) {
	var sum Summary
	clock := r.clock()
	start := clock.Now()
	logger := r.logger()

	size := r.BatchSize
	if size <= 0 {
		size = defaultBatchSize
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	batch := make([]Result, 0, size)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		batch = append(batch, Result{Number: lineNo, Input: text})
		if len(batch) < size {
			continue
		}
		if err := r.flush(ctx, batch, emit, &sum); err != nil {
			sum.Elapsed = clock.Since(start)
			return sum, err
		}
		logger.Debug("Flushed batch", "lines", len(batch), "through", lineNo)
		batch = batch[:0]
	}
	if err := scanner.Err(); err != nil {
		sum.Elapsed = clock.Since(start)
		return sum, fmt.Errorf("reading input after line %d: %w", lineNo, err)
	}

	err := r.flush(ctx, batch, emit, &sum)
	sum.Elapsed = clock.Since(start)
	return sum, err
}

func (r *Runner) flush(ctx context.Context, batch []Result, emit EmitFunc, sum *Summary) error {
	if len(batch) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range batch {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n := batch[i].Number
			batch[i] = Evaluate(batch[i].Input, r.Parse)
			batch[i].Number = n

			var le *LineError
			if errors.As(batch[i].Err, &le) {
				le.Line = n
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range batch {
		sum.Lines++
		if res.Err != nil {
			switch r.policy() {
			case Skip:
				sum.Skipped++
				r.logger().Warn("Skipping line", "line", res.Number, "error", res.Err)
				continue
			case Report:
				sum.Failed++
			default:
				return res.Err
			}
		} else {
			sum.Ranked++
			if sum.Categories == nil {
				sum.Categories = make(map[poker.Category]int)
			}
			sum.Categories[res.Category]++
			if res.IsTie() {
				sum.Ties++
			}
		}
		if err := emit(res); err != nil {
			return fmt.Errorf("writing line %d: %w", res.Number, err)
		}
	}
	return nil
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return runtime.NumCPU()
	}
	return r.Workers
}

func (r *Runner) policy() ErrorPolicy {
	if r.Policy == "" {
		return Abort
	}
	return r.Policy
}

func (r *Runner) clock() quartz.Clock {
	if r.Clock == nil {
		return quartz.NewReal()
	}
	return r.Clock
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}
