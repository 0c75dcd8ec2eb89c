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
	"errors"
	"fmt"
	"runtime"
)

// ErrUnavailable is wrapped by the error Acquire returns when the host has no AMX unit.
var ErrUnavailable = errors.New("amx: coprocessor not available")

// Guard holds a unit enabled between its construction and Release.
//
// Typical use:
//
//	g, err := amx.Acquire()
//	if err != nil {
//		return err
//	}
//	defer g.Release()
//
// A Guard is not safe for concurrent use. Guards must not overlap on the
// same unit: releasing the first one disables the unit even if another
// is still held, and nothing detects this.
type Guard struct {
	unit     Unit
	pinned   bool
	released bool
}

// Acquire enables the host coprocessor for the calling goroutine and
// returns a guard that disables it again. The goroutine stays locked to
// its OS thread until Release, because coprocessor state belongs to the
// thread. The error wraps ErrUnavailable when Detect reports Unavailable.
func Acquire() (*Guard, error) {
	u, ok := Hardware()
	if !ok {
		return nil, fmt.Errorf("%w on %s/%s", ErrUnavailable, runtime.GOOS, runtime.GOARCH)
	}
	return AcquireUnit(u), nil
}

// MustAcquire is like Acquire but panics when the coprocessor is missing.
func MustAcquire() *Guard {
	g, err := Acquire()
	if err != nil {
		panic(err)
	}
	return g
}

// AcquireUnit enables u and returns a guard over it. No availability check
// is made; use it with a software unit, or with Hardware after probing.
func AcquireUnit(u Unit) *Guard {
	g := &Guard{unit: u}
	if _, ok := u.(hardwareUnit); ok {
		runtime.LockOSThread()
		g.pinned = true
	}
	u.Set()
	return g
}

// Release disables the unit. Only the first call has any effect.
func (g *Guard) Release() {
	if g.released {
		return
	}
	g.released = true
	g.unit.Clr()
	if g.pinned {
		runtime.UnlockOSThread()
	}
}

// Unit returns the unit this guard enabled.
func (g *Guard) Unit() Unit {
	return g.unit
}

// Released reports whether Release has run.
func (g *Guard) Released() bool {
	return g.released
}
