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

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// Version identifies the Apple Silicon generation hosting the coprocessor.
type Version int

const (
	// Unavailable means the host has no usable AMX unit.
	Unavailable Version = iota
	// Generic is Apple Silicon of an unrecognized generation. AMX is
	// still assumed present.
	Generic
	M1
	M2
	M3
	M4
)

func (v Version) String() string {
	switch v {
	case Unavailable:
		return "unavailable"
	case Generic:
		return "generic"
	case M1:
		return "M1"
	case M2:
		return "M2"
	case M3:
		return "M3"
	case M4:
		return "M4"
	}
	return "Version(" + strconv.Itoa(int(v)) + ")"
}

// DisableEnv names the environment variable that forces Detect to report
// Unavailable. Any value other than "", "0" or "false" disables AMX.
const DisableEnv = "AMX_DISABLE"

var detected = sync.OnceValue(func() Version {
	if envDisabled(os.Getenv(DisableEnv)) {
		klog.V(1).Infof("amx: disabled by %s", DisableEnv)
		return Unavailable
	}
	brand, ok := brandString()
	if !ok {
		klog.V(1).Info("amx: no cpu brand string, reporting unavailable")
		return Unavailable
	}
	v := classifyBrand(brand)
	klog.V(1).Infof("amx: brand %q -> %s", brand, v)
	return v
})

// Detect returns the coprocessor generation of the host. The result is
// computed on first use and never re-evaluated.
func Detect() Version {
	return detected()
}

// Available reports whether the host has an AMX unit.
func Available() bool {
	return Detect() != Unavailable
}

func envDisabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false":
		return false
	}
	return true
}

// classifyBrand maps a machdep.cpu.brand_string value to a Version.
// Newer generations are matched first.
func classifyBrand(brand string) Version {
	if !strings.Contains(brand, "Apple") {
		return Unavailable
	}
	for _, c := range [...]struct {
		tag string
		v   Version
	}{{"M4", M4}, {"M3", M3}, {"M2", M2}, {"M1", M1}} {
		if strings.Contains(brand, c.tag) {
			return c.v
		}
	}
	return Generic
}
