package learning2mdx

import (
	"context"
	"sync"
	"time"
)

// RowResult holds the outcome of importing a single row.
type RowResult struct {
	Row      Row
	Document *Document // nil when Err is set
	Err      error
	Duration time.Duration
}

// BatchResult holds the outcome of ImportRows.
type BatchResult struct {
	Results []RowResult // one per input row, in row order
	Assets  AssetReport // union of every worker's asset references
}

// Failed returns the number of rows that could not be imported.
func (r *BatchResult) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Manifest returns the manifest entries of successfully imported rows,
// in row order.
func (r *BatchResult) Manifest() []ManifestEntry {
	entries := make([]ManifestEntry, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Err == nil && res.Document != nil {
			entries = append(entries, res.Document.Entry())
		}
	}
	return entries
}

// ImportRows imports rows with up to workers concurrent Importers
// (see ResolvePoolSize for workers <= 0).
// A failing row does not stop the batch: its error is recorded in its
// RowResult and the other rows are still imported. Once ctx is done the
// remaining rows are marked with ctx.Err() and that error is returned
// alongside the partial result.
func ImportRows(ctx context.Context, opts Options, rows []Row, workers int) (*BatchResult, error) {
	concurrency := ResolvePoolSize(workers)
	if concurrency > len(rows) {
		concurrency = len(rows)
	}

	pool, err := NewImporterPool(opts, concurrency)
	if err != nil {
		return nil, err
	}

	results := make([]RowResult, len(rows))
	var wg sync.WaitGroup
	jobs := make(chan int, len(rows))

	for w := 0; w < pool.Size(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			imp := pool.Acquire()
			defer pool.Release(imp)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RowResult{Row: rows[idx], Err: ctx.Err()}
					continue
				}
				results[idx] = importRow(imp, rows[idx])
			}
		}()
	}

	for i := range rows {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	batch := &BatchResult{Results: results, Assets: pool.Assets()}
	return batch, ctx.Err()
}

func importRow(imp *Importer, row Row) RowResult {
	start := time.Now()
	doc, err := imp.ImportRow(row)
	return RowResult{
		Row:      row,
		Document: doc,
		Err:      err,
		Duration: time.Since(start),
	}
}
