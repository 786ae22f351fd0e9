package pathiter

import (
	"iter"

	"github.com/arthur-debert/pathglob/pkg/types"
)

// Item is one element of a PathIter: a resolved path, or the error that
// kept one entry from being produced. On failure Path names the entry
// that could not be visited.
type Item struct {
	Path string
	Err  error
}

// Ok reports whether the item carries a path
func (i Item) Ok() bool {
	return i.Err == nil
}

// producer is the capability shared by the file, walk and glob variants
type producer interface {
	next() (Item, bool)
	close() error
}

// PathIter is a lazy, single-pass sequence of Items. The producer behind
// it is fixed when the sequence is built. A PathIter must be driven by
// one consumer at a time.
type PathIter struct {
	mode   types.ResolutionMode
	src    producer
	closed bool
}

func newPathIter(mode types.ResolutionMode, src producer) *PathIter {
	return &PathIter{mode: mode, src: src}
}

// Mode returns the resolution mode chosen for the pattern
func (p *PathIter) Mode() types.ResolutionMode {
	return p.mode
}

// Next returns the next item, or false once the sequence is exhausted.
// Resources are released as soon as the end is reached.
func (p *PathIter) Next() (Item, bool) {
	if p.closed {
		return Item{}, false
	}
	item, ok := p.src.next()
	if !ok {
		_ = p.Close()
	}
	return item, ok
}

// Close releases any directory handles still held. It is safe to call
// more than once; Next returns false afterwards.
func (p *PathIter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.src.close()
}

// All adapts the sequence for range-over-func loops. The PathIter is
// closed when the loop finishes or breaks.
func (p *PathIter) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		defer p.Close()
		for {
			item, ok := p.Next()
			if !ok || !yield(item.Path, item.Err) {
				return
			}
		}
	}
}

// fileProducer holds at most one pending path
type fileProducer struct {
	path    string
	pending bool
}

func (f *fileProducer) next() (Item, bool) {
	if !f.pending {
		return Item{}, false
	}
	f.pending = false
	return Item{Path: f.path}, true
}

func (f *fileProducer) close() error {
	f.pending = false
	return nil
}
