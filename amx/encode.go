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

// Operand layouts.
//
// Load/store of X or Y:
//
//	bit 62     pair (move 128 bytes into consecutive registers)
//	bits 56-58 register index
//	bits 0-55  address
//
// Load/store of Z:
//
//	bit 62     pair (move 128 bytes into consecutive rows)
//	bits 56-61 row
//	bits 0-55  address
//
// Compute (fma/fms/mac):
//
//	bit 63     vector mode (pointwise instead of outer product)
//	bits 20-25 Z row
//	bits 10-18 X byte offset
//	bits 0-8   Y byte offset
//
// Every field is masked to its width. Out-of-range values are truncated,
// not rejected: EncodeXY(addr, 9, false) addresses register 1.
const (
	AddrMask   uint64 = 1<<56 - 1
	regMask    uint64 = 0x7
	rowMask    uint64 = 0x3f
	offsetMask uint64 = 0x1ff

	pairBit   = 62
	vectorBit = 63
	regShift  = 56
	zRowShift = 20
	xOffShift = 10
)

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// EncodeXY packs a load/store operand for the X or Y register file.
func EncodeXY(addr, reg uint64, pair bool) uint64 {
	return b2u(pair)<<pairBit | (reg&regMask)<<regShift | addr&AddrMask
}

// EncodeZ packs a load/store operand for the Z register file.
func EncodeZ(addr, row uint64, pair bool) uint64 {
	return b2u(pair)<<pairBit | (row&rowMask)<<regShift | addr&AddrMask
}

// EncodeFMA packs a compute operand. xOffset and yOffset are byte offsets
// into the X and Y files; zRow selects the destination row (vector mode)
// or the row phase within the tile (matrix mode).
func EncodeFMA(xOffset, yOffset, zRow uint64, vectorMode bool) uint64 {
	return b2u(vectorMode)<<vectorBit |
		(zRow&rowMask)<<zRowShift |
		(xOffset&offsetMask)<<xOffShift |
		yOffset&offsetMask
}

// DecodeXY unpacks an operand built by EncodeXY.
func DecodeXY(operand uint64) (addr, reg uint64, pair bool) {
	return operand & AddrMask, operand >> regShift & regMask, operand>>pairBit&1 == 1
}

// DecodeZ unpacks an operand built by EncodeZ.
func DecodeZ(operand uint64) (addr, row uint64, pair bool) {
	return operand & AddrMask, operand >> regShift & rowMask, operand>>pairBit&1 == 1
}

// DecodeFMA unpacks an operand built by EncodeFMA.
func DecodeFMA(operand uint64) (xOffset, yOffset, zRow uint64, vectorMode bool) {
	return operand >> xOffShift & offsetMask,
		operand & offsetMask,
		operand >> zRowShift & rowMask,
		operand>>vectorBit == 1
}
