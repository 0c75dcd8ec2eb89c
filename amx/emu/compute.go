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

package emu

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"

	"github.com/ajroetker/go-amx/amx"
)

var le = binary.LittleEndian

// fmaScalar32 computes a*b + c with a single rounding to f32 (or c - a*b
// when sub is set). The f32 product is exact in f64.
func fmaScalar32(a, b, c float32, sub bool) float32 {
	if sub {
		a = -a
	}
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

func fmaScalar64(a, b, c float64, sub bool) float64 {
	if sub {
		a = -a
	}
	return math.FMA(a, b, c)
}

// fma32 executes fma32/fms32. Matrix mode is the outer product
//
//	Z[i*4 + zRow%4][j] += X[j] * Y[i]
//
// and vector mode is Z[zRow][j] += X[j] * Y[j].
func (u *Unit) fma32(operand uint64, sub bool) {
	xOff, yOff, zRow, vector := amx.DecodeFMA(operand)
	x, y := window(&u.x, xOff), window(&u.y, yOff)

	if vector {
		row := &u.z[zRow]
		for j := range amx.LanesF32 {
			xj := math.Float32frombits(le.Uint32(x[4*j:]))
			yj := math.Float32frombits(le.Uint32(y[4*j:]))
			zj := math.Float32frombits(le.Uint32(row[4*j:]))
			le.PutUint32(row[4*j:], math.Float32bits(fmaScalar32(xj, yj, zj, sub)))
		}
		return
	}

	phase := int(zRow) % amx.ZStrideF32
	for i := range amx.TileF32 {
		yi := math.Float32frombits(le.Uint32(y[4*i:]))
		row := &u.z[i*amx.ZStrideF32+phase]
		for j := range amx.TileF32 {
			xj := math.Float32frombits(le.Uint32(x[4*j:]))
			zij := math.Float32frombits(le.Uint32(row[4*j:]))
			le.PutUint32(row[4*j:], math.Float32bits(fmaScalar32(xj, yi, zij, sub)))
		}
	}
}

// fma64 executes fma64/fms64 on 8 lanes, Z row stride 8.
func (u *Unit) fma64(operand uint64, sub bool) {
	xOff, yOff, zRow, vector := amx.DecodeFMA(operand)
	x, y := window(&u.x, xOff), window(&u.y, yOff)

	if vector {
		row := &u.z[zRow]
		for j := range amx.LanesF64 {
			xj := math.Float64frombits(le.Uint64(x[8*j:]))
			yj := math.Float64frombits(le.Uint64(y[8*j:]))
			zj := math.Float64frombits(le.Uint64(row[8*j:]))
			le.PutUint64(row[8*j:], math.Float64bits(fmaScalar64(xj, yj, zj, sub)))
		}
		return
	}

	phase := int(zRow) % amx.ZStrideF64
	for i := range amx.TileF64 {
		yi := math.Float64frombits(le.Uint64(y[8*i:]))
		row := &u.z[i*amx.ZStrideF64+phase]
		for j := range amx.TileF64 {
			xj := math.Float64frombits(le.Uint64(x[8*j:]))
			zij := math.Float64frombits(le.Uint64(row[8*j:]))
			le.PutUint64(row[8*j:], math.Float64bits(fmaScalar64(xj, yi, zij, sub)))
		}
	}
}

// fma16 executes fma16/fms16 on 32 half-precision lanes, Z row stride 2.
// Results are stored as f16.
func (u *Unit) fma16(operand uint64, sub bool) {
	xOff, yOff, zRow, vector := amx.DecodeFMA(operand)
	x, y := window(&u.x, xOff), window(&u.y, yOff)
	h := func(b []byte) float32 {
		return float16.Frombits(le.Uint16(b)).Float32()
	}
	put := func(b []byte, v float32) {
		le.PutUint16(b, float16.Fromfloat32(v).Bits())
	}

	if vector {
		row := &u.z[zRow]
		for j := range amx.LanesF16 {
			put(row[2*j:], fmaScalar32(h(x[2*j:]), h(y[2*j:]), h(row[2*j:]), sub))
		}
		return
	}

	phase := int(zRow) % amx.ZStrideF16
	for i := range amx.TileF16 {
		yi := h(y[2*i:])
		row := &u.z[i*amx.ZStrideF16+phase]
		for j := range amx.TileF16 {
			put(row[2*j:], fmaScalar32(h(x[2*j:]), yi, h(row[2*j:]), sub))
		}
	}
}

// mac16 executes the i16 multiply-accumulate with wrapping arithmetic,
// laid out like fma16.
func (u *Unit) mac16(operand uint64) {
	xOff, yOff, zRow, vector := amx.DecodeFMA(operand)
	x, y := window(&u.x, xOff), window(&u.y, yOff)
	s := func(b []byte) int16 { return int16(le.Uint16(b)) }

	if vector {
		row := &u.z[zRow]
		for j := range amx.LanesI16 {
			le.PutUint16(row[2*j:], uint16(s(row[2*j:])+s(x[2*j:])*s(y[2*j:])))
		}
		return
	}

	phase := int(zRow) % amx.ZStrideF16
	for i := range amx.TileF16 {
		yi := s(y[2*i:])
		row := &u.z[i*amx.ZStrideF16+phase]
		for j := range amx.TileF16 {
			le.PutUint16(row[2*j:], uint16(s(row[2*j:])+s(x[2*j:])*yi))
		}
	}
}
