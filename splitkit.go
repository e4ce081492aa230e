// Package splitkit provides lazy splitting of a sequence
// at every n-th occurrence of a pattern.
//
// A chunk is the run of elements consumed since the previous chunk boundary.
// Once the pattern occurred n times within the chunk, the chunk is closed:
// the closing occurrence is consumed but left out of the yielded chunk,
// while the occurrences before it remain part of it.
// When the source runs out before the n-th occurrence,
// whatever accumulated so far is yielded as one final chunk.
//
// Matching is exact, contiguous and non-overlapping.
// After a mismatch the match restarts from the pattern head,
// so an occurrence that overlaps an abandoned partial match is not recovered
// (the pattern "aab" is not found in "aaab").
package splitkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
)

const (
	// ErrEmptyPattern is the panic value used when a splitting is requested with a pattern that has no elements.
	ErrEmptyPattern errorkit.Error = "splitkit: pattern must contain at least one element"
	// ErrNonPositiveCount is the panic value used when a splitting is requested with an occurrence count below one.
	ErrNonPositiveCount errorkit.Error = "splitkit: occurrence count must be at least one"
)

func validate(patternLength, n int) {
	if patternLength == 0 {
		panic(ErrEmptyPattern)
	}
	if n < 1 {
		panic(ErrNonPositiveCount)
	}
}

// matcher is the incremental pattern automaton shared by every source shape.
type matcher[T comparable] struct {
	pattern []T
	cursor  int
}

// feed consumes the next element and reports whether it completed a full pattern occurrence.
func (m *matcher[T]) feed(v T) bool {
	if v == m.pattern[m.cursor] {
		m.cursor++
	} else {
		m.cursor = 0
		if v == m.pattern[0] {
			m.cursor = 1
		}
	}
	if m.cursor < len(m.pattern) {
		return false
	}
	m.cursor = 0
	return true
}

// Seq returns a lazy sequence of the chunks of src,
// closing a chunk after every n-th occurrence of pattern.
// A stream source has no backing storage to slice into,
// so every yielded chunk is a newly materialised slice owned by the caller.
//
// Seq panics with ErrEmptyPattern / ErrNonPositiveCount when misconfigured.
func Seq[T comparable](src iter.Seq[T], pattern []T, n int) iter.Seq[[]T] {
	validate(len(pattern), n)
	return func(yield func([]T) bool) {
		var (
			m     = matcher[T]{pattern: pattern}
			chunk []T
			seen  int
		)
		for v := range src {
			chunk = append(chunk, v)
			if !m.feed(v) {
				continue
			}
			seen++
			if seen < n {
				continue
			}
			end := len(chunk) - len(pattern)
			if !yield(chunk[:end:end]) {
				return
			}
			chunk = nil
			seen = 0
		}
		if 0 < len(chunk) {
			yield(chunk)
		}
	}
}

// Pull is the Seq variant for a pull function based source.
// The next function is expected to keep reporting false once the source is exhausted.
func Pull[T comparable](next func() (T, bool), pattern []T, n int) iter.Seq[[]T] {
	return Seq(iterkit.FromPull(next), pattern, n)
}

// Slice splits vs at every n-th occurrence of pattern.
// The yielded chunks are zero-copy sub-slices of vs with their capacity clipped,
// so appending to a chunk cannot write into vs.
func Slice[T comparable](vs []T, pattern []T, n int) iter.Seq[[]T] {
	validate(len(pattern), n)
	return func(yield func([]T) bool) {
		var (
			m     = matcher[T]{pattern: pattern}
			start int
			seen  int
		)
		for i, v := range vs {
			if !m.feed(v) {
				continue
			}
			seen++
			if seen < n {
				continue
			}
			end := i + 1 - len(pattern)
			if !yield(vs[start:end:end]) {
				return
			}
			start = i + 1
			seen = 0
		}
		if start < len(vs) {
			yield(vs[start:])
		}
	}
}

// String splits s at every n-th occurrence of pattern,
// yielding zero-copy sub-strings of s.
// Matching happens byte by byte;
// a valid UTF-8 pattern can only match at rune boundaries of valid UTF-8 text,
// so multi-byte characters are never cut apart.
func String[S ~string](s S, pattern S, n int) iter.Seq[S] {
	validate(len(pattern), n)
	return func(yield func(S) bool) {
		var (
			m     = matcher[byte]{pattern: []byte(pattern)}
			start int
			seen  int
		)
		for i := 0; i < len(s); i++ {
			if !m.feed(s[i]) {
				continue
			}
			seen++
			if seen < n {
				continue
			}
			if !yield(s[start : i+1-len(pattern)]) {
				return
			}
			start = i + 1
			seen = 0
		}
		if start < len(s) {
			yield(s[start:])
		}
	}
}
