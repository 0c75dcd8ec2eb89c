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

//go:build noasm || !darwin || !arm64

package asm

// Stub implementations for hosts without an AMX unit. These must never be
// reached: callers check amx.Detect before selecting the hardware unit.

const unavailable = "amx: coprocessor instructions are not available on this platform"

func Set() { panic(unavailable) }
func Clr() { panic(unavailable) }

func Ldx(operand uint64)    { panic(unavailable) }
func Ldy(operand uint64)    { panic(unavailable) }
func Stx(operand uint64)    { panic(unavailable) }
func Sty(operand uint64)    { panic(unavailable) }
func Ldz(operand uint64)    { panic(unavailable) }
func Stz(operand uint64)    { panic(unavailable) }
func Ldzi(operand uint64)   { panic(unavailable) }
func Stzi(operand uint64)   { panic(unavailable) }
func Extrx(operand uint64)  { panic(unavailable) }
func Extry(operand uint64)  { panic(unavailable) }
func Fma64(operand uint64)  { panic(unavailable) }
func Fms64(operand uint64)  { panic(unavailable) }
func Fma32(operand uint64)  { panic(unavailable) }
func Fms32(operand uint64)  { panic(unavailable) }
func Mac16(operand uint64)  { panic(unavailable) }
func Fma16(operand uint64)  { panic(unavailable) }
func Fms16(operand uint64)  { panic(unavailable) }
func Vecint(operand uint64) { panic(unavailable) }
func Vecfp(operand uint64)  { panic(unavailable) }
func Matint(operand uint64) { panic(unavailable) }
func Matfp(operand uint64)  { panic(unavailable) }
func Genlut(operand uint64) { panic(unavailable) }
