package learning2mdx

import (
	"runtime"
	"sync"

	"github.com/alnah/go-learning2mdx/internal/directive"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps automatic sizing; conversion is CPU bound.
	MaxPoolSize = 16
)

// ImporterPool hands out Importers to parallel workers.
// Every Importer keeps its own converter state; the pool merges their asset
// references on demand. Importers are created lazily on first acquire.
type ImporterPool struct {
	opts      Options
	size      int
	importers []*Importer
	sem       chan *Importer
	mu        sync.Mutex
	created   int
}

// NewImporterPool validates opts and creates a pool with capacity for n
// Importers.
func NewImporterPool(opts Options, n int) (*ImporterPool, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		n = 1
	}

	return &ImporterPool{
		opts:      opts,
		size:      n,
		importers: make([]*Importer, 0, n),
		sem:       make(chan *Importer, n),
	}, nil
}

// Acquire gets an Importer from the pool, creating one if needed.
// Blocks if all Importers are in use.
func (p *ImporterPool) Acquire() *Importer {
	select {
	case imp := <-p.sem:
		return imp
	default:
	}

	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		imp := newImporter(p.opts)

		p.mu.Lock()
		p.importers = append(p.importers, imp)
		p.mu.Unlock()

		return imp
	}
	p.mu.Unlock()

	return <-p.sem
}

// Release returns an Importer to the pool.
func (p *ImporterPool) Release(imp *Importer) {
	if imp == nil {
		return
	}
	p.sem <- imp
}

// Size returns the pool capacity.
func (p *ImporterPool) Size() int {
	return p.size
}

// Assets merges the asset references of every Importer created so far.
// Call it once all workers have released their Importers.
func (p *ImporterPool) Assets() AssetReport {
	p.mu.Lock()
	importers := append([]*Importer(nil), p.importers...)
	p.mu.Unlock()

	var merged directive.Assets
	for _, imp := range importers {
		merged.Merge(imp.assets())
	}
	return newAssetReport(&merged)
}

// ResolvePoolSize determines the worker count.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
