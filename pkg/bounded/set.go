package bounded

import "fmt"

// Set enforces cardinality limits on deduplicated collections.
type Set[T comparable] struct {
	min, max int
}

// NewSet builds a Set accepting between min and max distinct items. A
// negative max means no upper limit. It panics if min is negative or above max.
func NewSet[T comparable](min, max int) Set[T] {
	if min < 0 || (max >= 0 && min > max) {
		panic(fmt.Sprintf("bounded: invalid set size %d..%d", min, max))
	}
	return Set[T]{min: min, max: max}
}

// CheckLen reports whether n items satisfy the limits.
func (s Set[T]) CheckLen(n int) error {
	if n < s.min {
		return fmt.Errorf("%w: %d < %d", ErrUnderflow, n, s.min)
	}
	if s.max >= 0 && n > s.max {
		return fmt.Errorf("%w: %d > %d", ErrOverflow, n, s.max)
	}
	return nil
}

// Collect deduplicates items, keeping first-seen order, and checks the result size.
func (s Set[T]) Collect(items []T) ([]T, error) {
	return s.CollectFunc(items, nil)
}

// CollectFunc is like Collect but also validates each distinct item with check.
func (s Set[T]) CollectFunc(items []T, check func(T) error) ([]T, error) {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for i, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		if check != nil {
			if err := check(item); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		seen[item] = struct{}{}
		out = append(out, item)
		if s.max >= 0 && len(out) > s.max {
			return nil, fmt.Errorf("%w: more than %d", ErrOverflow, s.max)
		}
	}
	if err := s.CheckLen(len(out)); err != nil {
		return nil, err
	}
	return out, nil
}
