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

// Package emu is a software model of one AMX execution context.
//
// A Unit implements amx.Unit with the same register files as the hardware
// (8 X and 8 Y registers of 64 bytes, 64 Z rows of 64 bytes) and the same
// operand decoding, so code written against amx.Guard runs unchanged on
// hosts without the coprocessor. It models loads, stores and the
// fma/fms/mac family in matrix and vector mode; the remaining ops panic.
//
// Unlike the hardware, a Unit traps misuse: any instruction issued while
// it is disabled panics, standing in for the SIGILL the CPU would raise.
//
// A Unit is not safe for concurrent use. Give each goroutine its own, the
// way each OS thread has its own coprocessor state.
package emu

import (
	"fmt"

	"github.com/ajroetker/go-amx/amx"
)

// Unit is an emulated coprocessor. The zero value is a disabled unit with
// zeroed registers.
type Unit struct {
	x, y [amx.XYBytes]byte
	z    [amx.NumZRows][amx.RegBytes]byte

	state  amx.State
	counts [amx.NumOps]int
	sets   int
	clrs   int
}

var _ amx.Unit = (*Unit)(nil)

// New returns a disabled unit.
func New() *Unit {
	return &Unit{}
}

// Set enables the unit. Enabling an enabled unit is a no-op, as on the
// hardware.
func (u *Unit) Set() {
	u.state = amx.Enabled
	u.sets++
}

// Clr disables the unit. Register contents are kept.
func (u *Unit) Clr() {
	u.state = amx.Disabled
	u.clrs++
}

// Exec executes a single instruction.
func (u *Unit) Exec(op amx.Op, operand uint64) {
	if u.state != amx.Enabled {
		panic(fmt.Sprintf("emu: %s issued while the unit is disabled", op))
	}
	if op >= amx.NumOps || op == amx.OpSet {
		panic(fmt.Sprintf("emu: %s cannot be issued through Exec", op))
	}
	u.counts[op]++

	switch op {
	case amx.OpLdx:
		u.loadXY(&u.x, operand)
	case amx.OpLdy:
		u.loadXY(&u.y, operand)
	case amx.OpStx:
		u.storeXY(&u.x, operand)
	case amx.OpSty:
		u.storeXY(&u.y, operand)
	case amx.OpLdz:
		u.loadZ(operand)
	case amx.OpStz:
		u.storeZ(operand)
	case amx.OpFma32:
		u.fma32(operand, false)
	case amx.OpFms32:
		u.fma32(operand, true)
	case amx.OpFma64:
		u.fma64(operand, false)
	case amx.OpFms64:
		u.fma64(operand, true)
	case amx.OpFma16:
		u.fma16(operand, false)
	case amx.OpFms16:
		u.fma16(operand, true)
	case amx.OpMac16:
		u.mac16(operand)
	default:
		panic(fmt.Sprintf("emu: %s is not modelled", op))
	}
}

// State reports whether the unit is enabled.
func (u *Unit) State() amx.State {
	return u.state
}

// Issued returns the number of instructions executed through Exec.
func (u *Unit) Issued() int {
	n := 0
	for _, c := range u.counts {
		n += c
	}
	return n
}

// Count returns how many times op was executed.
func (u *Unit) Count(op amx.Op) int {
	if op >= amx.NumOps {
		return 0
	}
	return u.counts[op]
}

// Sets returns how many enable sequences were issued.
func (u *Unit) Sets() int { return u.sets }

// Clrs returns how many disable sequences were issued.
func (u *Unit) Clrs() int { return u.clrs }

// Reset zeroes the registers and counters and disables the unit.
func (u *Unit) Reset() {
	*u = Unit{}
}
