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

// State is the coprocessor mode of one execution context.
type State uint8

const (
	Disabled State = iota
	Enabled
)

func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Unit is something that executes AMX instructions: the hardware
// coprocessor of the current OS thread, or a software model of one.
//
// Set and Clr issue the enable and disable sequences. Exec issues a single
// instruction with a pre-encoded operand; op must not be OpSet. Behavior
// of Exec while the unit is disabled is undefined.
type Unit interface {
	Set()
	Clr()
	Exec(op Op, operand uint64)
}

// Hardware returns the unit backed by the host coprocessor and whether
// that coprocessor exists. The returned unit is only meaningful on the
// OS thread that enabled it; use Acquire rather than calling Set directly.
func Hardware() (Unit, bool) {
	if !Available() {
		return nil, false
	}
	return hardwareUnit{}, true
}
