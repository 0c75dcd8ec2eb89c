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

package amx

import (
	"runtime"
	"unsafe"
)

// Load/store operands carry a raw address, so the memory behind them must
// not move while the instruction runs. Goroutine stacks can move; the heap
// cannot. Every pointer passed to a load or store method goes through
// escapes, which makes the compiler allocate the caller's buffer on the
// heap.
var sink struct {
	b bool
	p unsafe.Pointer
}

func escapes(p unsafe.Pointer) {
	if sink.b {
		sink.p = p
	}
}

func (g *Guard) memOp(op Op, operand uint64, p unsafe.Pointer) {
	g.unit.Exec(op, operand)
	runtime.KeepAlive(p)
}

// LoadX loads 64 bytes at p (128 when pair) into X register reg (0-7).
func (g *Guard) LoadX(p unsafe.Pointer, reg uint64, pair bool) {
	escapes(p)
	g.memOp(OpLdx, EncodeXY(uint64(uintptr(p)), reg, pair), p)
}

// LoadY loads 64 bytes at p (128 when pair) into Y register reg (0-7).
func (g *Guard) LoadY(p unsafe.Pointer, reg uint64, pair bool) {
	escapes(p)
	g.memOp(OpLdy, EncodeXY(uint64(uintptr(p)), reg, pair), p)
}

// StoreX stores X register reg (and reg+1 when pair) to p.
func (g *Guard) StoreX(p unsafe.Pointer, reg uint64, pair bool) {
	escapes(p)
	g.memOp(OpStx, EncodeXY(uint64(uintptr(p)), reg, pair), p)
}

// StoreY stores Y register reg (and reg+1 when pair) to p.
func (g *Guard) StoreY(p unsafe.Pointer, reg uint64, pair bool) {
	escapes(p)
	g.memOp(OpSty, EncodeXY(uint64(uintptr(p)), reg, pair), p)
}

// LoadZ loads 64 bytes at p (128 when pair) into Z row (0-63).
func (g *Guard) LoadZ(p unsafe.Pointer, row uint64, pair bool) {
	escapes(p)
	g.memOp(OpLdz, EncodeZ(uint64(uintptr(p)), row, pair), p)
}

// StoreZ stores Z row (and row+1 when pair) to p.
func (g *Guard) StoreZ(p unsafe.Pointer, row uint64, pair bool) {
	escapes(p)
	g.memOp(OpStz, EncodeZ(uint64(uintptr(p)), row, pair), p)
}

// LoadZI is the interleaved form of LoadZ.
func (g *Guard) LoadZI(p unsafe.Pointer, row uint64, pair bool) {
	escapes(p)
	g.memOp(OpLdzi, EncodeZ(uint64(uintptr(p)), row, pair), p)
}

// StoreZI is the interleaved form of StoreZ.
func (g *Guard) StoreZI(p unsafe.Pointer, row uint64, pair bool) {
	escapes(p)
	g.memOp(OpStzi, EncodeZ(uint64(uintptr(p)), row, pair), p)
}

// FMA32 accumulates f32 products into Z.
//
// In matrix mode (vectorMode false) it computes the outer product
//
//	Z[i*4 + zRow%4][j] += X[j] * Y[i]   for i, j in [0, 16)
//
// where X and Y are the 16 lanes starting at xOffset and yOffset bytes.
// In vector mode it computes Z[zRow][j] += X[j] * Y[j].
func (g *Guard) FMA32(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFma32, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// FMS32 is FMA32 with subtraction: Z -= X * Y.
func (g *Guard) FMS32(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFms32, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// FMA64 is FMA32 on 8 f64 lanes; the matrix-mode tile is 8x8 with Z row
// stride 8.
func (g *Guard) FMA64(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFma64, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// FMS64 is FMA64 with subtraction.
func (g *Guard) FMS64(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFms64, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// FMA16 is FMA32 on 32 f16 lanes; the matrix-mode tile is 32x32 with Z
// row stride 2.
func (g *Guard) FMA16(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFma16, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// FMS16 is FMA16 with subtraction.
func (g *Guard) FMS16(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpFms16, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// MAC16 is the i16 multiply-accumulate, laid out like FMA16.
func (g *Guard) MAC16(xOffset, yOffset, zRow uint64, vectorMode bool) {
	g.unit.Exec(OpMac16, EncodeFMA(xOffset, yOffset, zRow, vectorMode))
}

// Exec issues op with a pre-encoded operand. It is the entry point for
// the instructions without a typed wrapper (extrx, extry, vecint, vecfp,
// matint, matfp, genlut). Operands that carry addresses are the caller's
// responsibility.
func (g *Guard) Exec(op Op, operand uint64) {
	g.unit.Exec(op, operand)
}
