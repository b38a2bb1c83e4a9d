// Package linsys solves systems of linear equations by Gauss-Jordan
// elimination over any field.
package linsys

// Field is the set of operations a matrix element type needs. Operations must
// not modify their receivers or arguments. Zero and One must work on the zero
// value of T.
type Field[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	Zero() T
	One() T
	Equal(T) bool
}

// System is an augmented matrix: each row is the coefficients of one equation
// followed by its right-hand side. It is not safe to use a System
// concurrently.
type System[T Field[T]] struct {
	m    [][]T
	cols int
}

// New creates a system from an augmented matrix. Every row must have the same
// length. The rows are copied, but not their elements.
func New[T Field[T]](rows [][]T) *System[T] {
	s := System[T]{m: make([][]T, len(rows))}
	for i, row := range rows {
		s.m[i] = append([]T(nil), row...)
	}
	if len(rows) > 0 {
		s.cols = len(rows[0])
	}
	return &s
}

// NewEquations creates the system left·x = right. len(right) must equal
// len(left).
func NewEquations[T Field[T]](left [][]T, right []T) *System[T] {
	s := System[T]{m: make([][]T, len(left))}
	for i, row := range left {
		r := make([]T, len(row)+1)
		copy(r, row)
		r[len(row)] = right[i]
		s.m[i] = r
	}
	if len(left) > 0 {
		s.cols = len(left[0]) + 1
	}
	return &s
}

// Transpose returns the transpose of a rectangular matrix.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	r := make([][]T, len(m[0]))
	for j := range r {
		r[j] = make([]T, len(m))
		for i := range m {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// Rows returns the number of equations.
func (s *System[T]) Rows() int {
	return len(s.m)
}

// Cols returns the number of columns including the right-hand side.
func (s *System[T]) Cols() int {
	return s.cols
}

// At returns the element at row i, column j.
func (s *System[T]) At(i, j int) T {
	return s.m[i][j]
}

func isZero[T Field[T]](x T) bool {
	return x.Equal(x.Zero())
}

func isOne[T Field[T]](x T) bool {
	return x.Equal(x.One())
}

// IsPivoted returns whether the first non-zero coefficient of a row is one and
// every other row is zero in that column. A row whose coefficients are all
// zero is judged by its right-hand side instead.
func (s *System[T]) IsPivoted(row int) bool {
	if s.cols == 0 {
		return false
	}
	c := 0
	for c < s.cols-1 && isZero(s.m[row][c]) {
		c++
	}
	if !isOne(s.m[row][c]) {
		return false
	}
	for i := range s.m {
		if i != row && !isZero(s.m[i][c]) {
			return false
		}
	}
	return true
}

// PivotColumn returns the column of the leading one of a pivoted row, or -1 if
// the row is not pivoted. The result is Cols()-1 for a pivot in the right-hand
// side.
func (s *System[T]) PivotColumn(row int) int {
	if !s.IsPivoted(row) {
		return -1
	}
	c := 0
	for c < s.cols-1 && isZero(s.m[row][c]) {
		c++
	}
	return c
}

// Pivoted returns the number of pivoted rows.
func (s *System[T]) Pivoted() int {
	n := 0
	for i := range s.m {
		if s.IsPivoted(i) {
			n++
		}
	}
	return n
}

func (s *System[T]) scaleRow(i int, f T) {
	for j, x := range s.m[i] {
		s.m[i][j] = x.Mul(f)
	}
}

// addRow adds f times row src to row dst.
func (s *System[T]) addRow(src, dst int, f T) {
	for j, x := range s.m[dst] {
		s.m[dst][j] = x.Add(s.m[src][j].Mul(f))
	}
}

// reduceColumn makes col a pivot column if any unpivoted row has a non-zero
// entry in it. Pivoted rows are kept at the top.
func (s *System[T]) reduceColumn(col int) {
	p := 0
	for p < len(s.m) && (s.IsPivoted(p) || isZero(s.m[p][col])) {
		p++
	}
	if p == len(s.m) {
		return
	}
	n := s.Pivoted()
	if p != n {
		s.m[p], s.m[n] = s.m[n], s.m[p]
	}
	x := s.m[n][col]
	s.scaleRow(n, x.One().Quo(x))
	for i := range s.m {
		if i != n && !isZero(s.m[i][col]) {
			s.addRow(n, i, s.m[i][col].Neg())
		}
	}
}

// Solve reduces the system to reduced row echelon form and returns the
// right-hand sides of the pivoted rows, in order. If an unpivoted row has a
// non-zero right-hand side, the system is inconsistent and the result is nil
// with ok false. The solution is unique only if neither Underdetermined nor
// Overdetermined reports true afterward.
//
// Elimination covers min(Rows, Cols) columns, which includes the right-hand
// side when there are more equations than unknowns. An inconsistent equation
// then becomes a pivot of its own and is reported by Underdetermined.
func (s *System[T]) Solve() (x []T, ok bool) {
	n := len(s.m)
	if s.cols < n {
		n = s.cols
	}
	for col := 0; col < n; col++ {
		s.reduceColumn(col)
	}
	x = []T{}
	for i, row := range s.m {
		if s.IsPivoted(i) {
			x = append(x, row[s.cols-1])
		} else if !isZero(row[s.cols-1]) {
			return nil, false
		}
	}
	return x, true
}

// Underdetermined reports whether there are more pivots than unknowns.
func (s *System[T]) Underdetermined() bool {
	return s.Pivoted() > s.cols-1
}

// Overdetermined reports whether there are fewer pivots than unknowns.
func (s *System[T]) Overdetermined() bool {
	return s.Pivoted() < s.cols-1
}
