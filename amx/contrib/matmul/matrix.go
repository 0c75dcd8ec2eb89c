// Copyright 2025 go-amx Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matmul

import (
	"fmt"

	"github.com/ajroetker/go-amx/amx"
)

// Matrix is a row-major float32 matrix that owns its storage.
type Matrix struct {
	data []float32
	rows int
	cols int
}

// Zeros returns a rows×cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matmul: invalid shape %dx%d", rows, cols))
	}
	return &Matrix{data: make([]float32, rows*cols), rows: rows, cols: cols}
}

// Fill returns a rows×cols matrix with every element set to v.
func Fill(rows, cols int, v float32) *Matrix {
	m := Zeros(rows, cols)
	for i := range m.data {
		m.data[i] = v
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

// FromSlice returns a rows×cols matrix holding a copy of data.
// It panics if len(data) != rows*cols.
func FromSlice(rows, cols int, data []float32) *Matrix {
	m := FromVec(rows, cols, data)
	m.data = append([]float32(nil), data...)
	return m
}

// FromVec returns a rows×cols matrix that takes ownership of data.
// It panics if len(data) != rows*cols.
func FromVec(rows, cols int, data []float32) *Matrix {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		panic(fmt.Sprintf("matmul: data length %d does not match shape %dx%d", len(data), rows, cols))
	}
	return &Matrix{data: data, rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (int, int) { return m.rows, m.cols }

// Data returns the row-major backing slice.
func (m *Matrix) Data() []float32 { return m.data }

func (m *Matrix) index(row, col int) int {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matmul: index (%d, %d) out of bounds for %dx%d", row, col, m.rows, m.cols))
	}
	return row*m.cols + col
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float32 {
	return m.data[m.index(row, col)]
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col int, v float32) {
	m.data[m.index(row, col)] = v
}

func (m *Matrix) checkProduct(o *Matrix) {
	if m.cols != o.rows {
		panic(fmt.Sprintf("matmul: dimensions don't match: (%d, %d) x (%d, %d)", m.rows, m.cols, o.rows, o.cols))
	}
}

// MatMul returns m × o, on the coprocessor when the host has one and both
// operands are square of equal size. It panics if m.Cols() != o.Rows().
func (m *Matrix) MatMul(o *Matrix) *Matrix {
	m.checkProduct(o)
	r := Zeros(m.rows, o.cols)
	MatMul(m.data, o.data, r.data, m.rows, o.cols, m.cols)
	return r
}

// MatMulOn is MatMul with the square case run on u.
func (m *Matrix) MatMulOn(u amx.Unit, o *Matrix) *Matrix {
	m.checkProduct(o)
	r := Zeros(m.rows, o.cols)
	MatMulUnit(u, m.data, o.data, r.data, m.rows, o.cols, m.cols)
	return r
}

// MatMulAssign replaces m with m × o. The product must keep m's shape.
func (m *Matrix) MatMulAssign(o *Matrix) {
	r := m.MatMul(o)
	if r.cols != m.cols {
		panic(fmt.Sprintf("matmul: result shape %dx%d differs from %dx%d", r.rows, r.cols, m.rows, m.cols))
	}
	m.data = r.data
}

// Transpose returns the cols×rows transpose of m.
func (m *Matrix) Transpose() *Matrix {
	t := Zeros(m.cols, m.rows)
	for i := range m.rows {
		for j := range m.cols {
			t.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return t
}

func (m *Matrix) zipWith(o *Matrix, op string, f func(x, y float32) float32) *Matrix {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("matmul: %s of %dx%d and %dx%d", op, m.rows, m.cols, o.rows, o.cols))
	}
	r := Zeros(m.rows, m.cols)
	for i, x := range m.data {
		r.data[i] = f(x, o.data[i])
	}
	return r
}

// Add returns the element-wise sum. Shapes must match.
func (m *Matrix) Add(o *Matrix) *Matrix {
	return m.zipWith(o, "add", func(x, y float32) float32 { return x + y })
}

// Sub returns the element-wise difference. Shapes must match.
func (m *Matrix) Sub(o *Matrix) *Matrix {
	return m.zipWith(o, "sub", func(x, y float32) float32 { return x - y })
}

// Scale returns m with every element multiplied by s.
func (m *Matrix) Scale(s float32) *Matrix {
	r := Zeros(m.rows, m.cols)
	for i, x := range m.data {
		r.data[i] = x * s
	}
	return r
}

// String shows the shape and the first few elements.
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d, %v...)", m.rows, m.cols, m.data[:min(4, len(m.data))])
}
