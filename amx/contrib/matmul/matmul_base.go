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

// Floats is the set of element types the kernels accept.
type Floats interface {
	~float32 | ~float64
}

// checkShapes panics unless a, b and c can hold an m×k, k×n and m×n
// matrix. Negative dimensions are rejected too.
func checkShapes[T Floats](name string, a, b, c []T, m, n, k int) {
	if m < 0 || n < 0 || k < 0 {
		panic(name + ": negative dimension")
	}
	if len(a) < m*k {
		panic(name + ": A slice too short")
	}
	if len(b) < k*n {
		panic(name + ": B slice too short")
	}
	if len(c) < m*n {
		panic(name + ": C slice too short")
	}
}

// MatMulNaive computes C = A * B with the standard triple loop, where
//   - A is M x K (row-major)
//   - B is K x N (row-major)
//   - C is M x N (row-major)
//
// It never touches the coprocessor and serves as the reference the tiled
// kernel is checked against.
func MatMulNaive(a, b, c []float32, m, n, k int) {
	checkShapes("MatMulNaive", a, b, c, m, n, k)
	matmulScalar(a, b, c, m, n, k)
}

// MatMulNaive64 is MatMulNaive for float64.
func MatMulNaive64(a, b, c []float64, m, n, k int) {
	checkShapes("MatMulNaive64", a, b, c, m, n, k)
	matmulScalar(a, b, c, m, n, k)
}

func matmulScalar[T Floats](a, b, c []T, m, n, k int) {
	clear(c[:m*n])
	for i := range m {
		for p := range k {
			aip := a[i*k+p]
			for j := range n {
				c[i*n+j] += aip * b[p*n+j]
			}
		}
	}
}
