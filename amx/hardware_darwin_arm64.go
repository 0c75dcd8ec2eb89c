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

//go:build !noasm && darwin && arm64

package amx

import (
	"golang.org/x/sys/unix"

	"github.com/ajroetker/go-amx/amx/asm"
)

// brandString reads the CPU brand, e.g. "Apple M2 Pro".
func brandString() (string, bool) {
	brand, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil || brand == "" {
		return "", false
	}
	return brand, true
}

// hardwareOps maps each opcode to its asm entry point. OpSet is handled
// by Set and Clr.
var hardwareOps = [NumOps]func(uint64){
	OpLdx:    asm.Ldx,
	OpLdy:    asm.Ldy,
	OpStx:    asm.Stx,
	OpSty:    asm.Sty,
	OpLdz:    asm.Ldz,
	OpStz:    asm.Stz,
	OpLdzi:   asm.Ldzi,
	OpStzi:   asm.Stzi,
	OpExtrx:  asm.Extrx,
	OpExtry:  asm.Extry,
	OpFma64:  asm.Fma64,
	OpFms64:  asm.Fms64,
	OpFma32:  asm.Fma32,
	OpFms32:  asm.Fms32,
	OpMac16:  asm.Mac16,
	OpFma16:  asm.Fma16,
	OpFms16:  asm.Fms16,
	OpVecint: asm.Vecint,
	OpVecfp:  asm.Vecfp,
	OpMatint: asm.Matint,
	OpMatfp:  asm.Matfp,
	OpGenlut: asm.Genlut,
}

type hardwareUnit struct{}

func (hardwareUnit) Set() { asm.Set() }
func (hardwareUnit) Clr() { asm.Clr() }

func (hardwareUnit) Exec(op Op, operand uint64) {
	// The tiled kernel's ops are called directly.
	switch op {
	case OpLdx:
		asm.Ldx(operand)
	case OpLdy:
		asm.Ldy(operand)
	case OpLdz:
		asm.Ldz(operand)
	case OpStz:
		asm.Stz(operand)
	case OpFma32:
		asm.Fma32(operand)
	default:
		if op >= NumOps || op == OpSet {
			panic("amx: Exec called with " + op.String())
		}
		hardwareOps[op](operand)
	}
}
