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

// Package asm issues raw AMX instructions.
//
// Every function maps to exactly one machine instruction and takes a
// pre-encoded operand (see amx.EncodeXY, amx.EncodeZ and amx.EncodeFMA).
// Nothing here is checked:
//
//   - the coprocessor must be enabled with Set on the calling OS thread,
//     which must stay locked (runtime.LockOSThread) until Clr;
//   - addresses in load/store operands must point at live, non-moving
//     memory of at least 64 bytes (128 when paired);
//   - issuing an instruction while disabled raises SIGILL.
//
// Most callers want amx.Guard, which wraps these with the enable/disable
// discipline and operand encoding.
package asm
