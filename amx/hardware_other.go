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

package amx

import "github.com/ajroetker/go-amx/amx/asm"

// brandString always fails: only darwin/arm64 hosts carry AMX.
func brandString() (string, bool) {
	return "", false
}

// hardwareUnit is never handed out here because Detect reports
// Unavailable; its methods reach the panicking asm stubs.
type hardwareUnit struct{}

func (hardwareUnit) Set()                       { asm.Set() }
func (hardwareUnit) Clr()                       { asm.Clr() }
func (hardwareUnit) Exec(op Op, operand uint64) { asm.Ldx(operand) }
