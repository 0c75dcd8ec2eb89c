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

import "fmt"

// Op is an AMX opcode. The instruction word for an op is
// OpBase + (op << 5); the low five bits carry the operand register
// (always x0 here) or, for OpSet, the set/clear selector.
type Op uint32

// OpBase is the fixed prefix shared by every AMX instruction word.
const OpBase uint32 = 0x00201000

// NopWord is the arm64 NOP encoding. Three of them must precede the
// set and clear instructions.
const NopWord uint32 = 0xd503201f

const (
	OpLdx    Op = 0  // load X register
	OpLdy    Op = 1  // load Y register
	OpStx    Op = 2  // store X register
	OpSty    Op = 3  // store Y register
	OpLdz    Op = 4  // load Z row
	OpStz    Op = 5  // store Z row
	OpLdzi   Op = 6  // load Z, interleaved
	OpStzi   Op = 7  // store Z, interleaved
	OpExtrx  Op = 8  // extract into X
	OpExtry  Op = 9  // extract into Y
	OpFma64  Op = 10 // f64 fused multiply-add
	OpFms64  Op = 11 // f64 fused multiply-subtract
	OpFma32  Op = 12 // f32 fused multiply-add
	OpFms32  Op = 13 // f32 fused multiply-subtract
	OpMac16  Op = 14 // i16 multiply-accumulate
	OpFma16  Op = 15 // f16 fused multiply-add
	OpFms16  Op = 16 // f16 fused multiply-subtract
	OpSet    Op = 17 // enable (low bit 0) / disable (low bit 1)
	OpVecint Op = 18
	OpVecfp  Op = 19
	OpMatint Op = 20
	OpMatfp  Op = 21
	OpGenlut Op = 22

	// NumOps is one past the highest opcode.
	NumOps = 23
)

var opNames = [NumOps]string{
	OpLdx:    "ldx",
	OpLdy:    "ldy",
	OpStx:    "stx",
	OpSty:    "sty",
	OpLdz:    "ldz",
	OpStz:    "stz",
	OpLdzi:   "ldzi",
	OpStzi:   "stzi",
	OpExtrx:  "extrx",
	OpExtry:  "extry",
	OpFma64:  "fma64",
	OpFms64:  "fms64",
	OpFma32:  "fma32",
	OpFms32:  "fms32",
	OpMac16:  "mac16",
	OpFma16:  "fma16",
	OpFms16:  "fms16",
	OpSet:    "set",
	OpVecint: "vecint",
	OpVecfp:  "vecfp",
	OpMatint: "matint",
	OpMatfp:  "matfp",
	OpGenlut: "genlut",
}

// String returns the assembler mnemonic.
func (op Op) String() string {
	if op < NumOps {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint32(op))
}

// Word returns the 32-bit instruction word for op.
func (op Op) Word() uint32 {
	return OpBase + uint32(op)<<5
}

// IsLoadStore reports whether op moves data between memory and a
// register file, i.e. whether its operand carries an address.
func (op Op) IsLoadStore() bool {
	return op <= OpStzi
}

var (
	// SetWord enables the coprocessor.
	SetWord = OpSet.Word()
	// ClrWord disables the coprocessor.
	ClrWord = OpSet.Word() + 1
)

// EnableSequence returns the exact instruction words issued to enable
// the coprocessor: three NOPs followed by set.
func EnableSequence() []uint32 {
	return []uint32{NopWord, NopWord, NopWord, SetWord}
}

// DisableSequence returns the exact instruction words issued to disable
// the coprocessor: three NOPs followed by clr.
func DisableSequence() []uint32 {
	return []uint32{NopWord, NopWord, NopWord, ClrWord}
}
