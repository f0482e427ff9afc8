package mocks

import (
	"fmt"

	"google.golang.org/api/iterator"
)

// SliceIterator serves rows from memory the way a BigQuery row iterator does.
// Err, when set, is returned after the rows are exhausted instead of iterator.Done.
type SliceIterator[T any] struct {
	Rows []T
	Err  error

	next int
}

func NewSliceIterator[T any](rows ...T) *SliceIterator[T] {
	return &SliceIterator[T]{Rows: rows}
}

func (it *SliceIterator[T]) Next(dst interface{}) error {
	if it.next >= len(it.Rows) {
		if it.Err != nil {
			return it.Err
		}

		return iterator.Done
	}

	row, ok := dst.(*T)
	if !ok {
		return fmt.Errorf("mocks: cannot load %T into %T", it.Rows[it.next], dst)
	}

	*row = it.Rows[it.next]
	it.next++

	return nil
}
