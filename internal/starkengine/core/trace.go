package core

import "fmt"

// Row is a mapping from column name to a field-encodable integer. Int64
// values are converted to Fe on demand by constraint closures via Field.
type Row map[string]int64

// Field converts column name to its Fe value. Missing columns read as
// zero, matching the width-checked invariant enforced at insertion time.
func (r Row) Field(name string) Fe {
	return NewFeFromInt64(r[name])
}

// Trace is the execution trace T: an immutable H×W matrix of named
// columns, built by in-order row insertion and read-only afterward.
type Trace struct {
	h, w  int
	rows  []Row
	names map[string]struct{}
}

// NewTrace constructs an empty trace with fixed height H and width W.
func NewTrace(h, w int) *Trace {
	return &Trace{h: h, w: w, rows: make([]Row, 0, h)}
}

// H returns the trace height.
func (t *Trace) H() int { return t.h }

// W returns the trace width.
func (t *Trace) W() int { return t.w }

// InsertRow appends row. Fails with ErrTraceFull once H rows are present,
// or ErrWidthMismatch if len(row) != W.
func (t *Trace) InsertRow(row Row) error {
	if len(t.rows) >= t.h {
		return fmt.Errorf("core: insert row %d: %w", len(t.rows), ErrTraceFull)
	}
	if len(row) != t.w {
		return fmt.Errorf("core: insert row %d with %d columns, want %d: %w", len(t.rows), len(row), t.w, ErrWidthMismatch)
	}
	if t.names == nil {
		t.names = make(map[string]struct{}, t.w)
		for name := range row {
			t.names[name] = struct{}{}
		}
	} else {
		for name := range row {
			if _, ok := t.names[name]; !ok {
				return fmt.Errorf("core: insert row %d: unknown column %q: %w", len(t.rows), name, ErrWidthMismatch)
			}
		}
	}
	cp := make(Row, len(row))
	for k, v := range row {
		cp[k] = v
	}
	t.rows = append(t.rows, cp)
	return nil
}

// Row returns a copy of row i. Fails with ErrOutOfRange if i>=H or the
// trace has not yet been fully populated up to i.
func (t *Trace) Row(i int) (Row, error) {
	if i < 0 || i >= t.h || i >= len(t.rows) {
		return nil, fmt.Errorf("core: row(%d): %w", i, ErrOutOfRange)
	}
	cp := make(Row, len(t.rows[i]))
	for k, v := range t.rows[i] {
		cp[k] = v
	}
	return cp, nil
}

// Full reports whether all H rows have been inserted.
func (t *Trace) Full() bool { return len(t.rows) == t.h }
