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
	"sync"
	"unsafe"

	"github.com/ajroetker/go-amx/amx"
)

// scratch holds the three register-sized staging rows the tiled kernel
// moves through the coprocessor. Backed by uint64 so float64 views are
// aligned; pooled so the rows always live on the heap.
type scratch struct {
	row  [amx.RegBytes / 8]uint64 // C tile row, seed and drain
	aCol [amx.RegBytes / 8]uint64 // A column -> Y0
	bRow [amx.RegBytes / 8]uint64 // B row -> X0
}

var scratchPool = sync.Pool{
	New: func() any {
		return new(scratch)
	},
}

func lanes[T Floats](p *[amx.RegBytes / 8]uint64) []T {
	var zero T
	return unsafe.Slice((*T)(unsafe.Pointer(p)), amx.RegBytes/int(unsafe.Sizeof(zero)))
}

// TiledMatMul computes C = A * B for n×n row-major matrices on the unit
// held by g, using 16×16 f32 outer products.
//
// For every 16×16 output tile it seeds Z rows 0, 4, ..., 60 from C,
// accumulates one FMA32 per reduction index (A column in Y0, B row in X0)
// and drains the Z rows back into C. Edge tiles are zero-padded in
// scratch rows and the padding is discarded on drain. n == 0 issues no
// instructions.
//
// g must be held by the calling goroutine for the whole call. Summation
// order differs from MatMulNaive, so results agree only to floating-point
// tolerance.
func TiledMatMul(g *amx.Guard, a, b, c []float32, n int) {
	checkShapes("TiledMatMul", a, b, c, n, n, n)
	checkGuard("TiledMatMul", g)
	tiledMatMul(g, g.FMA32, a, b, c, n)
}

// TiledMatMul64 is TiledMatMul for float64, using 8×8 FMA64 tiles whose
// rows sit 8 Z rows apart.
func TiledMatMul64(g *amx.Guard, a, b, c []float64, n int) {
	checkShapes("TiledMatMul64", a, b, c, n, n, n)
	checkGuard("TiledMatMul64", g)
	tiledMatMul(g, g.FMA64, a, b, c, n)
}

func checkGuard(name string, g *amx.Guard) {
	if g == nil {
		panic(name + ": nil guard")
	}
	if g.Released() {
		panic(name + ": guard already released")
	}
}

func tiledMatMul[T Floats](g *amx.Guard, fma func(xOffset, yOffset, zRow uint64, vectorMode bool), a, b, c []T, n int) {
	clear(c[:n*n])
	if n == 0 {
		return
	}

	s := scratchPool.Get().(*scratch)
	defer scratchPool.Put(s)
	cRow, aCol, bRow := lanes[T](&s.row), lanes[T](&s.aCol), lanes[T](&s.bRow)
	tile := len(cRow)
	zStride := uint64(amx.NumZRows / tile)

	for i := 0; i < n; i += tile {
		rows := min(tile, n-i)
		for j := 0; j < n; j += tile {
			cols := min(tile, n-j)

			// Seed Z with the current C tile.
			for r := range rows {
				clear(cRow)
				off := (i+r)*n + j
				copy(cRow, c[off:off+cols])
				g.LoadZ(unsafe.Pointer(&s.row), uint64(r)*zStride, false)
			}

			// Z[r*stride][q] += A[i+r][p] * B[p][j+q], one outer product per p.
			for k := 0; k < n; k += tile {
				depth := min(tile, n-k)
				for kk := range depth {
					p := k + kk
					clear(aCol)
					for r := range rows {
						aCol[r] = a[(i+r)*n+p]
					}
					g.LoadY(unsafe.Pointer(&s.aCol), 0, false)

					clear(bRow)
					copy(bRow, b[p*n+j:p*n+j+cols])
					g.LoadX(unsafe.Pointer(&s.bRow), 0, false)

					fma(0, 0, 0, false)
				}
			}

			// Drain, dropping the padded lanes.
			for r := range rows {
				g.StoreZ(unsafe.Pointer(&s.row), uint64(r)*zStride, false)
				off := (i+r)*n + j
				copy(c[off:off+cols], cRow[:cols])
			}
		}
	}
}
