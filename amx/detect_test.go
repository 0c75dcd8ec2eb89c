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

import "testing"

func TestDetectIsCached(t *testing.T) {
	first := Detect()
	for range 100 {
		if v := Detect(); v != first {
			t.Fatalf("Detect() = %s, previously %s", v, first)
		}
	}
	if Available() != (first != Unavailable) {
		t.Fatalf("Available() disagrees with Detect() = %s", first)
	}
	t.Logf("AMX: %s", first)
}

func TestClassifyBrand(t *testing.T) {
	tests := []struct {
		brand string
		want  Version
	}{
		{"Apple M1", M1},
		{"Apple M1 Max", M1},
		{"Apple M2 Pro", M2},
		{"Apple M3", M3},
		{"Apple M4 Max", M4},
		{"Apple processor", Generic},
		{"Intel(R) Core(TM) i9-9980HK CPU @ 2.40GHz", Unavailable},
		{"", Unavailable},
	}
	for _, tt := range tests {
		if got := classifyBrand(tt.brand); got != tt.want {
			t.Errorf("classifyBrand(%q) = %s, want %s", tt.brand, got, tt.want)
		}
	}
}

func TestEnvDisabled(t *testing.T) {
	for _, v := range []string{"", "0", "false", " FALSE "} {
		if envDisabled(v) {
			t.Errorf("envDisabled(%q) = true", v)
		}
	}
	for _, v := range []string{"1", "true", "yes"} {
		if !envDisabled(v) {
			t.Errorf("envDisabled(%q) = false", v)
		}
	}
}

func TestVersionString(t *testing.T) {
	if got := M3.String(); got != "M3" {
		t.Errorf("M3.String() = %q", got)
	}
	if got := Version(42).String(); got != "Version(42)" {
		t.Errorf("Version(42).String() = %q", got)
	}
}
