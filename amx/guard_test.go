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

package amx_test

import (
	"errors"
	"math"
	"sync"
	"testing"
	"unsafe"

	"github.com/ajroetker/go-amx/amx"
	"github.com/ajroetker/go-amx/amx/emu"
)

func TestSequentialGuardsLeaveUnitDisabled(t *testing.T) {
	u := emu.New()
	for range 50 {
		g := amx.AcquireUnit(u)
		if u.State() != amx.Enabled {
			t.Fatalf("state after AcquireUnit = %s", u.State())
		}
		g.FMA32(0, 0, 0, false)
		g.Release()
		if u.State() != amx.Disabled {
			t.Fatalf("state after Release = %s", u.State())
		}
	}
	if u.Sets() != 50 || u.Clrs() != 50 {
		t.Errorf("sets=%d clrs=%d, want 50 each", u.Sets(), u.Clrs())
	}
}

func TestReleaseRunsOnce(t *testing.T) {
	u := emu.New()
	g := amx.AcquireUnit(u)
	g.Release()
	g.Release()
	if u.Clrs() != 1 {
		t.Errorf("clrs = %d after double Release, want 1", u.Clrs())
	}
	if !g.Released() {
		t.Error("Released() = false")
	}
}

func TestReleaseOnEarlyReturn(t *testing.T) {
	u := emu.New()
	work := func(fail bool) error {
		g := amx.AcquireUnit(u)
		defer g.Release()
		if fail {
			return errors.New("precondition")
		}
		g.FMA32(0, 0, 0, false)
		return nil
	}
	_ = work(true)
	_ = work(false)
	if u.State() != amx.Disabled {
		t.Fatalf("state = %s, want disabled", u.State())
	}
}

func TestReleaseOnPanic(t *testing.T) {
	u := emu.New()
	func() {
		defer func() { _ = recover() }()
		g := amx.AcquireUnit(u)
		defer g.Release()
		panic("boom")
	}()
	if u.State() != amx.Disabled {
		t.Fatalf("state = %s after panic, want disabled", u.State())
	}
}

// Overlapping guards on one unit are a documented misuse: the first
// Release disables the unit for both.
func TestOverlappingGuardsAreNotDetected(t *testing.T) {
	u := emu.New()
	outer := amx.AcquireUnit(u)
	inner := amx.AcquireUnit(u)
	outer.Release()
	if u.State() != amx.Disabled {
		t.Fatalf("state = %s, want disabled after first release", u.State())
	}
	inner.Release()
}

func TestAcquireWithoutHardware(t *testing.T) {
	if amx.Available() {
		t.Skip("host has AMX")
	}
	g, err := amx.Acquire()
	if !errors.Is(err, amx.ErrUnavailable) || g != nil {
		t.Fatalf("Acquire() = %v, %v; want nil, ErrUnavailable", g, err)
	}
	if _, ok := amx.Hardware(); ok {
		t.Fatal("Hardware() reported a unit on a host without AMX")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustAcquire did not panic")
		}
	}()
	amx.MustAcquire()
}

var roundTripPatterns = [][16]float32{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{-0, 1e-45, -1e38, 3.5, float32(math.Inf(1)), float32(math.Inf(-1)), 0.1, -0.1},
	{math.Float32frombits(0x7fc00001), math.Float32frombits(0xffffffff), 1, -1},
}

// roundTrip stores each pattern into every slot and reads it back.
func roundTrip(t *testing.T, g *amx.Guard) {
	t.Helper()
	src := new([16]float32)
	dst := new([16]float32)
	files := []struct {
		name  string
		load  func(unsafe.Pointer, uint64, bool)
		store func(unsafe.Pointer, uint64, bool)
	}{
		{"X", g.LoadX, g.StoreX},
		{"Y", g.LoadY, g.StoreY},
	}
	for _, f := range files {
		for _, pattern := range roundTripPatterns {
			for slot := range uint64(amx.NumXRegs) {
				*src = pattern
				*dst = [16]float32{}
				f.load(unsafe.Pointer(src), slot, false)
				f.store(unsafe.Pointer(dst), slot, false)
				for i := range dst {
					if math.Float32bits(dst[i]) != math.Float32bits(pattern[i]) {
						t.Fatalf("%s[%d] lane %d = %#x, want %#x", f.name, slot, i,
							math.Float32bits(dst[i]), math.Float32bits(pattern[i]))
					}
				}
			}
		}
	}
}

func TestRegisterRoundTripEmulated(t *testing.T) {
	g := amx.AcquireUnit(emu.New())
	defer g.Release()
	roundTrip(t, g)
}

func TestRegisterRoundTripHardware(t *testing.T) {
	g, err := amx.Acquire()
	if err != nil {
		t.Skipf("no hardware: %v", err)
	}
	defer g.Release()
	roundTrip(t, g)
}

func TestZRoundTrip(t *testing.T) {
	g := amx.AcquireUnit(emu.New())
	defer g.Release()
	src := new([32]float32)
	dst := new([32]float32)
	for i := range src {
		src[i] = float32(i) * 1.5
	}
	g.LoadZ(unsafe.Pointer(src), 10, true)
	g.StoreZ(unsafe.Pointer(dst), 10, true)
	if *dst != *src {
		t.Fatalf("paired Z round trip: got %v, want %v", dst, src)
	}
}

// Each goroutine owns its unit, the way each thread owns its coprocessor
// state.
func TestIndependentUnitsConcurrently(t *testing.T) {
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Go(func() {
			u := emu.New()
			g := amx.AcquireUnit(u)
			defer g.Release()
			in := new([16]float32)
			out := new([16]float32)
			for i := range in {
				in[i] = float32(w*100 + i)
			}
			for range 100 {
				g.LoadY(unsafe.Pointer(in), uint64(w), false)
				g.StoreY(unsafe.Pointer(out), uint64(w), false)
				if *out != *in {
					t.Errorf("worker %d: got %v, want %v", w, out, in)
					return
				}
			}
		})
	}
	wg.Wait()
}
