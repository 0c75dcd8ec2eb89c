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

// Register file geometry.
//
// X and Y each hold 8 registers of 64 bytes. Compute instructions address
// them by byte offset, so a 64-byte read starting near the end wraps to
// the start of the file. Z holds 64 rows of 64 bytes.
const (
	RegBytes = 64
	NumXRegs = 8
	NumYRegs = 8
	XYBytes  = NumXRegs * RegBytes // 512
	NumZRows = 64
	ZBytes   = NumZRows * RegBytes // 4096
)

// Lane counts per 64-byte register.
const (
	LanesF64 = RegBytes / 8 // 8
	LanesF32 = RegBytes / 4 // 16
	LanesF16 = RegBytes / 2 // 32
	LanesI16 = LanesF16
)

// Outer-product tiling. An f32 matrix-mode fma writes a 16x16 tile whose
// logical row i lives in Z row i*ZStrideF32 + (zRow % ZStrideF32), so four
// independent f32 tiles interleave across the 64 Z rows. The f64 tile is
// 8x8 with stride 8; f16 and i16 tiles are 32x32 with stride 2.
const (
	TileF32    = LanesF32
	ZStrideF32 = NumZRows / TileF32 // 4

	TileF64    = LanesF64
	ZStrideF64 = NumZRows / TileF64 // 8

	TileF16    = LanesF16
	ZStrideF16 = NumZRows / TileF16 // 2
)
