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
	"unsafe"

	"github.com/ajroetker/go-amx/amx"
)

// memory returns the n bytes at addr. The address comes out of an
// operand, so it is reinterpreted rather than converted: the compiler
// may not track it as a pointer, and the caller (amx.Guard) keeps the
// heap object alive.
func memory(addr uint64, n int) []byte {
	p := uintptr(addr)
	return unsafe.Slice(*(**byte)(unsafe.Pointer(&p)), n)
}

func moveBytes(pair bool) int {
	if pair {
		return 2 * amx.RegBytes
	}
	return amx.RegBytes
}

// loadXY copies one register (two when paired) from memory. A pair
// starting at register 7 continues at register 0.
func (u *Unit) loadXY(file *[amx.XYBytes]byte, operand uint64) {
	addr, reg, pair := amx.DecodeXY(operand)
	src := memory(addr, moveBytes(pair))
	for i := 0; i < len(src); i += amx.RegBytes {
		r := (int(reg) + i/amx.RegBytes) % amx.NumXRegs
		copy(file[r*amx.RegBytes:(r+1)*amx.RegBytes], src[i:])
	}
}

func (u *Unit) storeXY(file *[amx.XYBytes]byte, operand uint64) {
	addr, reg, pair := amx.DecodeXY(operand)
	dst := memory(addr, moveBytes(pair))
	for i := 0; i < len(dst); i += amx.RegBytes {
		r := (int(reg) + i/amx.RegBytes) % amx.NumXRegs
		copy(dst[i:i+amx.RegBytes], file[r*amx.RegBytes:])
	}
}

func (u *Unit) loadZ(operand uint64) {
	addr, row, pair := amx.DecodeZ(operand)
	src := memory(addr, moveBytes(pair))
	for i := 0; i < len(src); i += amx.RegBytes {
		r := (int(row) + i/amx.RegBytes) % amx.NumZRows
		copy(u.z[r][:], src[i:])
	}
}

func (u *Unit) storeZ(operand uint64) {
	addr, row, pair := amx.DecodeZ(operand)
	dst := memory(addr, moveBytes(pair))
	for i := 0; i < len(dst); i += amx.RegBytes {
		r := (int(row) + i/amx.RegBytes) % amx.NumZRows
		copy(dst[i:i+amx.RegBytes], u.z[r][:])
	}
}

// window reads the 64 bytes of an X or Y file starting at a byte offset,
// wrapping past the end of the file.
func window(file *[amx.XYBytes]byte, off uint64) (w [amx.RegBytes]byte) {
	start := int(off)
	if start+amx.RegBytes <= amx.XYBytes {
		copy(w[:], file[start:])
		return w
	}
	for i := range w {
		w[i] = file[(start+i)%amx.XYBytes]
	}
	return w
}
