// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package sparsity

import (
	"bufio"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Pattern is a boolean matrix marking which entries of a Jacobian or Hessian may be structurally nonzero.
//
// A true entry is a conservative over-approximation: it must be true whenever the derivative entry may be
// nonzero, but it may also be true for entries that are always zero.
//
// Pattern is immutable once created, and it is safe to share it across goroutines.
type Pattern struct {
	rows, cols int

	// data is stored in row-major order.
	data []bool
}

// Coordinate of one entry of a Pattern: row and column, 0-based.
type Coordinate struct {
	Row, Col int
}

func checkDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(ErrShape, "invalid pattern dimensions (%d, %d)", rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return errors.Wrapf(ErrShape, "pattern dimensions (%d, %d) overflow the number of entries", rows, cols)
	}
	return nil
}

// Zeros returns a pattern of the given shape with no nonzero entries.
func Zeros(rows, cols int) (*Pattern, error) {
	if err := checkDims(rows, cols); err != nil {
		return nil, err
	}
	return &Pattern{rows: rows, cols: cols, data: make([]bool, rows*cols)}, nil
}

// Full returns a pattern of the given shape where every entry is marked as (possibly) nonzero.
// It's the safest possible pattern, with no sparsity information at all.
func Full(rows, cols int) (*Pattern, error) {
	p, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for ii := range p.data {
		p.data[ii] = true
	}
	return p, nil
}

// FromCoordinates returns a pattern of the given shape with the listed entries marked as nonzero.
// Repeated coordinates are fine.
func FromCoordinates(rows, cols int, coords ...Coordinate) (*Pattern, error) {
	p, err := Zeros(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, errors.Wrapf(ErrShape, "coordinate (%d, %d) out of range for pattern of shape (%d, %d)",
				c.Row, c.Col, rows, cols)
		}
		p.data[c.Row*cols+c.Col] = true
	}
	return p, nil
}

// FromDense returns the pattern of nonzero values of the given dense matrix.
// All rows must have the same length.
func FromDense[T constraints.Integer | constraints.Float](m [][]T) (*Pattern, error) {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	p, _ := Zeros(rows, cols)
	for row, values := range m {
		if len(values) != cols {
			return nil, errors.Wrapf(ErrShape, "row %d has %d columns, but row 0 has %d", row, len(values), cols)
		}
		for col, v := range values {
			p.data[row*cols+col] = v != 0
		}
	}
	return p, nil
}

// FromBools returns a pattern from a dense boolean matrix. All rows must have the same length.
func FromBools(m [][]bool) (*Pattern, error) {
	rows := len(m)
	cols := 0
	if rows > 0 {
		cols = len(m[0])
	}
	p, _ := Zeros(rows, cols)
	for row, values := range m {
		if len(values) != cols {
			return nil, errors.Wrapf(ErrShape, "row %d has %d columns, but row 0 has %d", row, len(values), cols)
		}
		copy(p.data[row*cols:(row+1)*cols], values)
	}
	return p, nil
}

// Parse a pattern from its text representation: one row per line, with 'x', '*' or '1' for a nonzero entry,
// and '.' or '0' for a zero entry. Spaces and tabs are ignored, and so are empty lines and lines starting with '#'.
//
// It's the same format output by Pattern.String.
func Parse(text string) (*Pattern, error) {
	var m [][]bool
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, r := range line {
			switch r {
			case 'x', 'X', '*', '1':
				row = append(row, true)
			case '.', '0':
				row = append(row, false)
			case ' ', '\t':
			default:
				return nil, errors.Errorf("invalid character %q in line %d of pattern", r, lineNum)
			}
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read pattern")
	}
	return FromBools(m)
}

// Rows returns the number of rows of the pattern.
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of columns of the pattern.
func (p *Pattern) Cols() int { return p.cols }

// Shape returns the number of rows and columns.
func (p *Pattern) Shape() (rows, cols int) { return p.rows, p.cols }

// IsSquare returns whether the pattern has as many rows as columns.
func (p *Pattern) IsSquare() bool { return p.rows == p.cols }

// At returns whether the entry (row, col) may be nonzero.
//
// It panics if row or col are out of range.
func (p *Pattern) At(row, col int) bool {
	if row < 0 || row >= p.rows || col < 0 || col >= p.cols {
		exceptions.Panicf("Pattern.At(%d, %d) out of range for pattern of shape (%d, %d)", row, col, p.rows, p.cols)
	}
	return p.data[row*p.cols+col]
}

// NNZ returns the number of entries marked as nonzero.
func (p *Pattern) NNZ() int {
	var count int
	for _, v := range p.data {
		if v {
			count++
		}
	}
	return count
}

// RowNonZeros returns the columns with nonzero entries in the given row, in increasing order.
func (p *Pattern) RowNonZeros(row int) []int {
	if row < 0 || row >= p.rows {
		exceptions.Panicf("Pattern.RowNonZeros(%d) out of range for pattern with %d rows", row, p.rows)
	}
	var cols []int
	for col, v := range p.data[row*p.cols : (row+1)*p.cols] {
		if v {
			cols = append(cols, col)
		}
	}
	return cols
}

// ColNonZeros returns the rows with nonzero entries in the given column, in increasing order.
func (p *Pattern) ColNonZeros(col int) []int {
	if col < 0 || col >= p.cols {
		exceptions.Panicf("Pattern.ColNonZeros(%d) out of range for pattern with %d columns", col, p.cols)
	}
	var rows []int
	for row := range p.rows {
		if p.data[row*p.cols+col] {
			rows = append(rows, row)
		}
	}
	return rows
}

// IsSymmetric returns whether the pattern is square and structurally symmetric.
func (p *Pattern) IsSymmetric() bool {
	if !p.IsSquare() {
		return false
	}
	n := p.rows
	for row := range n {
		for col := row + 1; col < n; col++ {
			if p.data[row*n+col] != p.data[col*n+row] {
				return false
			}
		}
	}
	return true
}

// Transpose returns a new pattern with rows and columns swapped.
func (p *Pattern) Transpose() *Pattern {
	t := &Pattern{rows: p.cols, cols: p.rows, data: make([]bool, len(p.data))}
	for row := range p.rows {
		for col := range p.cols {
			t.data[col*t.cols+row] = p.data[row*p.cols+col]
		}
	}
	return t
}

// Equal returns whether both patterns have the same shape and the same nonzero entries.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.rows == other.rows && p.cols == other.cols && slices.Equal(p.data, other.data)
}

// String returns the pattern in the format accepted by Parse, with a leading comment line with its shape.
func (p *Pattern) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "# (%d, %d), nnz=%d\n", p.rows, p.cols, p.NNZ())
	for row := range p.rows {
		for col := range p.cols {
			if p.data[row*p.cols+col] {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
