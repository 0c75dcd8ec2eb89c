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

// Package amx drives the Apple Silicon matrix coprocessor.
//
// The package has three layers:
//
//   - Op, EncodeXY, EncodeZ and EncodeFMA build instruction words and
//     64-bit operands. They are pure and work on every platform.
//   - Unit and Guard implement the enable/disable lifecycle. A Guard
//     enables a unit on construction and disables it on Release.
//   - Methods on Guard (LoadX, StoreZ, FMA32, ...) encode and issue single
//     instructions.
//
// Detect reports whether the host has the coprocessor. Only darwin/arm64
// builds without the noasm tag can reach the hardware; elsewhere Detect
// returns Unavailable and the software model in amx/emu can stand in.
//
// Issuing instructions outside a Guard, with invalid addresses, or with two
// overlapping Guards on one thread is undefined behavior and is not
// detected.
package amx
