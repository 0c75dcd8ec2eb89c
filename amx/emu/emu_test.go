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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/ajroetker/go-amx/amx"
)

// held keeps every buffer handed to the unit on the heap and alive for
// the rest of the test binary.
var held []any

func addr[T any](p *T) uint64 {
	held = append(held, p)
	return uint64(uintptr(unsafe.Pointer(p)))
}

func enabled() *Unit {
	u := New()
	u.Set()
	return u
}

func (u *Unit) loadF32(op amx.Op, reg uint64, v *[16]float32) {
	u.Exec(op, amx.EncodeXY(addr(v), reg, false))
}

func (u *Unit) zRowF32(row int) [16]float32 {
	var out [16]float32
	for j := range out {
		out[j] = math.Float32frombits(binary.LittleEndian.Uint32(u.z[row][4*j:]))
	}
	return out
}

func TestExecWhileDisabledPanics(t *testing.T) {
	u := New()
	require.PanicsWithValue(t, "emu: fma32 issued while the unit is disabled", func() {
		u.Exec(amx.OpFma32, 0)
	})

	u.Set()
	u.Clr()
	require.Panics(t, func() { u.Exec(amx.OpLdx, 0) })
}

func TestUnmodelledOpPanics(t *testing.T) {
	u := enabled()
	require.PanicsWithValue(t, "emu: genlut is not modelled", func() {
		u.Exec(amx.OpGenlut, 0)
	})
	require.Panics(t, func() { u.Exec(amx.OpSet, 0) })
}

func TestFMA32OuterProduct(t *testing.T) {
	u := enabled()
	x, y := new([16]float32), new([16]float32)
	for i := range 16 {
		x[i] = float32(i + 1)
		y[i] = float32(10 * (i + 1))
	}
	u.loadF32(amx.OpLdx, 0, x)
	u.loadF32(amx.OpLdy, 0, y)
	u.Exec(amx.OpFma32, amx.EncodeFMA(0, 0, 0, false))
	u.Exec(amx.OpFma32, amx.EncodeFMA(0, 0, 0, false))

	for i := range 16 {
		row := u.zRowF32(i * amx.ZStrideF32)
		for j := range 16 {
			require.Equal(t, 2*x[j]*y[i], row[j], "Z[%d][%d]", i*amx.ZStrideF32, j)
		}
		// Rows of the other three phases are untouched.
		require.Equal(t, [16]float32{}, u.zRowF32(i*amx.ZStrideF32+1))
	}

	u.Exec(amx.OpFms32, amx.EncodeFMA(0, 0, 0, false))
	require.Equal(t, x[3]*y[2], u.zRowF32(2*amx.ZStrideF32)[3])
}

func TestFMA32Phase(t *testing.T) {
	u := enabled()
	x, y := new([16]float32), new([16]float32)
	x[0], y[1] = 3, 5
	u.loadF32(amx.OpLdx, 0, x)
	u.loadF32(amx.OpLdy, 0, y)
	u.Exec(amx.OpFma32, amx.EncodeFMA(0, 0, 2, false))
	require.Equal(t, float32(15), u.zRowF32(1*amx.ZStrideF32+2)[0])
}

func TestFMA32VectorMode(t *testing.T) {
	u := enabled()
	x, y := new([16]float32), new([16]float32)
	for i := range 16 {
		x[i] = float32(i)
		y[i] = 2
	}
	u.loadF32(amx.OpLdx, 3, x)
	u.loadF32(amx.OpLdy, 5, y)
	u.Exec(amx.OpFma32, amx.EncodeFMA(3*amx.RegBytes, 5*amx.RegBytes, 17, true))

	row := u.zRowF32(17)
	for j := range 16 {
		require.Equal(t, 2*float32(j), row[j])
	}
	require.Equal(t, 1, u.Count(amx.OpFma32))
	require.Equal(t, 3, u.Issued())
}

func TestOffsetWrapsAroundFile(t *testing.T) {
	u := enabled()
	last, first := new([16]float32), new([16]float32)
	for i := range 16 {
		last[i] = float32(100 + i)
		first[i] = float32(200 + i)
	}
	u.loadF32(amx.OpLdx, 7, last)
	u.loadF32(amx.OpLdx, 0, first)

	w := window(&u.x, 7*amx.RegBytes+32)
	got := func(lane int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(w[4*lane:]))
	}
	require.Equal(t, float32(108), got(0))
	require.Equal(t, float32(115), got(7))
	require.Equal(t, float32(200), got(8))
	require.Equal(t, float32(207), got(15))
}

func TestPairLoadWraps(t *testing.T) {
	u := enabled()
	var src [32]float32
	for i := range src {
		src[i] = float32(i)
	}
	u.Exec(amx.OpLdy, amx.EncodeXY(addr(&src), 7, true))

	var out [16]float32
	u.Exec(amx.OpSty, amx.EncodeXY(addr(&out), 0, false))
	require.Equal(t, float32(16), out[0])
	require.Equal(t, float32(31), out[15])
}

func TestFMA64(t *testing.T) {
	u := enabled()
	x, y := new([8]float64), new([8]float64)
	for i := range 8 {
		x[i] = float64(i) + 0.5
		y[i] = float64(i) - 0.25
	}
	u.Exec(amx.OpLdx, amx.EncodeXY(addr(x), 0, false))
	u.Exec(amx.OpLdy, amx.EncodeXY(addr(y), 0, false))
	u.Exec(amx.OpFma64, amx.EncodeFMA(0, 0, 0, false))

	var row [8]float64
	for i := range 8 {
		u.Exec(amx.OpStz, amx.EncodeZ(addr(&row), uint64(i*amx.ZStrideF64), false))
		for j := range 8 {
			require.Equal(t, x[j]*y[i], row[j], "tile[%d][%d]", i, j)
		}
	}

	u.Exec(amx.OpFms64, amx.EncodeFMA(0, 0, 63, true))
	u.Exec(amx.OpStz, amx.EncodeZ(addr(&row), 63, false))
	for j := range 8 {
		require.Equal(t, -x[j]*y[j], row[j])
	}
}

func TestFMA16(t *testing.T) {
	u := enabled()
	var x, y [32]float16.Float16
	for i := range 32 {
		x[i] = float16.Fromfloat32(float32(i%4) + 1)
		y[i] = float16.Fromfloat32(0.5)
	}
	u.Exec(amx.OpLdx, amx.EncodeXY(addr(&x), 0, false))
	u.Exec(amx.OpLdy, amx.EncodeXY(addr(&y), 0, false))
	u.Exec(amx.OpFma16, amx.EncodeFMA(0, 0, 1, false))

	var row [32]float16.Float16
	u.Exec(amx.OpStz, amx.EncodeZ(addr(&row), 5*amx.ZStrideF16+1, false))
	for j := range 32 {
		require.Equal(t, (float32(j%4)+1)*0.5, row[j].Float32())
	}

	u.Exec(amx.OpFms16, amx.EncodeFMA(0, 0, 1, false))
	u.Exec(amx.OpStz, amx.EncodeZ(addr(&row), 5*amx.ZStrideF16+1, false))
	require.Equal(t, float32(0), row[9].Float32())
}

func TestMAC16(t *testing.T) {
	u := enabled()
	var x, y [32]int16
	for i := range 32 {
		x[i] = int16(i)
		y[i] = -3
	}
	x[31] = math.MaxInt16
	u.Exec(amx.OpLdx, amx.EncodeXY(addr(&x), 0, false))
	u.Exec(amx.OpLdy, amx.EncodeXY(addr(&y), 0, false))
	u.Exec(amx.OpMac16, amx.EncodeFMA(0, 0, 8, true))

	var row [32]int16
	u.Exec(amx.OpStz, amx.EncodeZ(addr(&row), 8, false))
	require.Equal(t, int16(-30), row[10])
	big := int16(math.MaxInt16)
	require.Equal(t, big*-3, row[31])
}

func TestReset(t *testing.T) {
	u := enabled()
	u.Exec(amx.OpFma32, 0)
	u.Reset()
	require.Equal(t, amx.Disabled, u.State())
	require.Zero(t, u.Issued())
	require.Zero(t, u.Sets())
}
