package domain

import (
	m "github.com/mouse-blink/undercover/internal/model"
)

// TupleStore is an immutable view over the coverage data of one node's
// interior, preserving the report order of the original data.
type TupleStore struct {
	data []m.Datum
}

// NewTupleStore keeps the data whose line lies strictly between firstLine
// and lastLine. The input slice is never modified.
func NewTupleStore(data []m.Datum, firstLine, lastLine int) TupleStore {
	scoped := make([]m.Datum, 0, len(data))

	for _, d := range data {
		if d.Line > firstLine && d.Line < lastLine {
			scoped = append(scoped, d)
		}
	}

	return TupleStore{data: scoped}
}

// All returns a copy of every datum in report order.
func (s TupleStore) All() []m.Datum {
	return append([]m.Datum(nil), s.data...)
}

// Len returns the number of data in the store.
func (s TupleStore) Len() int {
	return len(s.data)
}

// Lines returns the line data only, in report order.
func (s TupleStore) Lines() []m.Datum {
	lines := make([]m.Datum, 0, len(s.data))

	for _, d := range s.data {
		if d.IsLine() {
			lines = append(lines, d)
		}
	}

	return lines
}

// Branches returns the branch data recorded at line.
func (s TupleStore) Branches(line int) []m.Datum {
	var branches []m.Datum

	for _, d := range s.data {
		if d.IsBranch() && d.Line == line {
			branches = append(branches, d)
		}
	}

	return branches
}
