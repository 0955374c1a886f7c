// Package pipeline provides the high-level orchestration for batch resume processing.
package pipeline

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-intake/internal/aggregate"
	"github.com/jonathan/resume-intake/internal/duration"
	"github.com/jonathan/resume-intake/internal/flatten"
	"github.com/jonathan/resume-intake/internal/types"
)

// Document is one input to a processing batch: a source name for error
// reporting and the raw extracted JSON content.
type Document struct {
	Name    string
	Content []byte
}

// Row is one fully processed output row: the flat fields, the parsed
// duration, and the candidate-level total joined on after aggregation.
type Row struct {
	types.FlatRow
	Parsed           duration.ParsedDuration `json:"parsed_duration"`
	NormalizedMobile string                  `json:"normalized_mobile"`
	TotalMonths      int                     `json:"total_experience_months"`
}

// ProgressEvent reports one step of a batch run to an observing caller.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as batch processing advances
type ProgressCallback func(event ProgressEvent)

// Options configures a batch run.
type Options struct {
	// Now is the processing date used to resolve floating tokens like
	// "Present". Zero means time.Now().
	Now time.Time
	// Workers bounds the number of documents flattened concurrently.
	// Zero means one worker per CPU.
	Workers    int
	OnProgress ProgressCallback
}

// Result is the outcome of a batch run. Errors holds the per-document
// failures that were skipped; they never abort the batch.
type Result struct {
	RunID  uuid.UUID            `json:"run_id"`
	Now    time.Time            `json:"processed_at"`
	Rows   []Row                `json:"rows"`
	Errors []flatten.ErrorEntry `json:"errors"`
	Totals map[string]int       `json:"totals"`
}

// Process runs the full batch: decode and flatten every document, resolve
// each row's duration, then aggregate per-candidate totals and join them
// back onto the rows. Documents are processed concurrently but results are
// merged in input order, so output is deterministic. The only error return
// is context cancellation; everything else lands in Result.Errors.
func Process(ctx context.Context, docs []Document, opts Options) (*Result, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := &Result{RunID: uuid.New(), Now: now}
	emit(opts, ProgressEvent{Step: "flatten", Message: "flattening documents", RunID: result.RunID.String()})

	// Per-document outcome, indexed by input position so the merge below
	// preserves input order regardless of worker scheduling.
	type outcome struct {
		rows []Row
		err  *flatten.ErrorEntry
	}
	outcomes := make([]outcome, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, entry := flatten.DecodeRecord(doc.Name, doc.Content)
			if entry != nil {
				outcomes[i] = outcome{err: entry}
				return nil
			}
			var rows []Row
			for _, flat := range flatten.Flatten(record) {
				rows = append(rows, Row{
					FlatRow:          flat,
					Parsed:           duration.Resolve(flat.Duration, now),
					NormalizedMobile: aggregate.NormalizeMobile(flat.Mobile),
				})
			}
			outcomes[i] = outcome{rows: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, out := range outcomes {
		if out.err != nil {
			log.Warn().Str("source", docs[i].Name).Str("kind", string(out.err.Kind)).
				Str("run_id", result.RunID.String()).Msg("document skipped")
			result.Errors = append(result.Errors, *out.err)
			continue
		}
		result.Rows = append(result.Rows, out.rows...)
	}

	// Aggregation is a full-barrier reduction: it runs only once every row
	// is materialized.
	emit(opts, ProgressEvent{Step: "aggregate", Message: "computing per-candidate totals", RunID: result.RunID.String()})
	stints := make([]aggregate.Stint, len(result.Rows))
	for i, row := range result.Rows {
		stints[i] = aggregate.Stint{Mobile: row.Mobile, Months: row.Parsed.Months}
	}
	result.Totals = aggregate.Totals(stints)
	for i := range result.Rows {
		result.Rows[i].TotalMonths = result.Totals[result.Rows[i].NormalizedMobile]
	}

	log.Info().Str("run_id", result.RunID.String()).
		Int("documents", len(docs)).
		Int("rows", len(result.Rows)).
		Int("candidates", len(result.Totals)).
		Int("skipped", len(result.Errors)).
		Msg("batch processed")

	return result, nil
}

func emit(opts Options, event ProgressEvent) {
	if opts.OnProgress != nil {
		opts.OnProgress(event)
	}
}
