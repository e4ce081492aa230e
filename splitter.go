package splitkit

import "iter"

// NewSplitter returns a pull style iterator over the chunks of src.
// It splits the same way Seq does,
// but control returns to the caller after each chunk
// through an explicit Next/Value pair instead of a range loop.
func NewSplitter[T comparable](src iter.Seq[T], pattern []T, n int) *Splitter[T] {
	next, stop := iter.Pull(Seq(src, pattern, n))
	return &Splitter[T]{next: next, stop: stop}
}

// Splitter iterates over the chunks of its source sequence.
//
// Once Next reported false, the Splitter is exhausted,
// and every further Next call reports false as well.
type Splitter[T comparable] struct {
	next func() ([]T, bool)
	stop func()

	value []T
	done  bool
}

// Next advances the Splitter by consuming source elements until a chunk is complete,
// and reports whether Value holds a fresh chunk.
func (s *Splitter[T]) Next() bool {
	if s.done {
		return false
	}
	chunk, ok := s.next()
	if !ok {
		_ = s.Close()
		return false
	}
	s.value = chunk
	return true
}

// Value returns the current chunk.
// The action is repeatable without side effects.
func (s *Splitter[T]) Value() []T {
	return s.value
}

// Err belongs to the pull iterator contract.
// A Splitter has no failure mode of its own;
// errors of an I/O backed source are the source's concern and surface there.
func (s *Splitter[T]) Err() error {
	return nil
}

// Close releases the underlying source. It is safe to call it repeatedly.
func (s *Splitter[T]) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	s.stop()
	return nil
}
