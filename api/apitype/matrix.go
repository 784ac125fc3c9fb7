package apitype

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix of unsigned bytes. A loaded image
// occupies one row with its pixels interleaved scanline by scanline, so
// a batch of N images becomes an N row matrix.
type Matrix struct {
	rows int
	cols int
	data []byte
}

func NewMatrix(rows int, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]byte, rows*cols),
	}
}

func MatrixOf(rows int, cols int, data []byte) (*Matrix, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("matrix of %d x %d needs %d bytes, got %d", rows, cols, rows*cols, len(data))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: data,
	}, nil
}

func (s *Matrix) Rows() int {
	if s != nil {
		return s.rows
	} else {
		return 0
	}
}

func (s *Matrix) Cols() int {
	if s != nil {
		return s.cols
	} else {
		return 0
	}
}

func (s *Matrix) IsEmpty() bool {
	return s == nil || len(s.data) == 0
}

// Data returns the backing slice. The caller may mutate the bytes but
// not the length.
func (s *Matrix) Data() []byte {
	if s != nil {
		return s.data
	} else {
		return nil
	}
}

// Resize reallocates the matrix to the given dimensions. Old contents
// are discarded.
func (s *Matrix) Resize(rows int, cols int) {
	s.rows = rows
	s.cols = cols
	s.data = make([]byte, rows*cols)
}

func (s *Matrix) At(row int, col int) byte {
	return s.data[row*s.cols+col]
}

func (s *Matrix) Set(row int, col int, value byte) {
	s.data[row*s.cols+col] = value
}

// Row returns the given row as a slice sharing the matrix's storage.
func (s *Matrix) Row(row int) []byte {
	start := row * s.cols
	return s.data[start : start+s.cols]
}

func (s *Matrix) String() string {
	if s == nil {
		return "Matrix<nil>"
	}
	return fmt.Sprintf("Matrix{%d x %d}", s.rows, s.cols)
}

// ToDense copies the matrix into a gonum Dense so the pixel data can be
// fed to the numerical side of the toolkit.
func (s *Matrix) ToDense() *mat.Dense {
	if s.IsEmpty() {
		return &mat.Dense{}
	}
	values := make([]float64, len(s.data))
	for i, b := range s.data {
		values[i] = float64(b)
	}
	return mat.NewDense(s.rows, s.cols, values)
}

// MatrixFromDense copies a gonum Dense into a byte matrix. Values are
// clamped to the 0..255 range.
func MatrixFromDense(dense mat.Matrix) *Matrix {
	rows, cols := dense.Dims()
	matrix := NewMatrix(rows, cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			value := dense.At(row, col)
			if value < 0 {
				value = 0
			} else if value > 255 {
				value = 255
			}
			matrix.Set(row, col, byte(value))
		}
	}
	return matrix
}
