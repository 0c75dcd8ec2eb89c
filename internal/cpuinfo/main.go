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

// Package main provides a diagnostic tool to print the AMX probe result,
// the CPU features detected by Go and the coprocessor opcode table.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-amx/amx"
)

func main() {
	klog.InitFlags(nil)
	opcodes := flag.Bool("opcodes", false, "print the instruction word of every opcode")
	flag.Parse()
	defer klog.Flush()

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("AMX: %s\n", amx.Detect())
	fmt.Printf("AMX available: %v\n", amx.Available())
	if os.Getenv(amx.DisableEnv) != "" {
		fmt.Printf("AMX disabled by %s\n", amx.DisableEnv)
	}
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}

	if *opcodes {
		fmt.Println()
		printOpcodes()
	}
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Println("  (no AMX coprocessor on this architecture)")
}

func printOpcodes() {
	upper := cases.Upper(language.Und)
	fmt.Println("=== AMX opcodes ===")
	fmt.Printf("  %-7s %#08x (nop x3, then op 17 operand 0)\n", "SET", amx.SetWord)
	fmt.Printf("  %-7s %#08x (nop x3, then op 17 operand 1)\n", "CLR", amx.ClrWord)
	for op := range amx.Op(amx.NumOps) {
		if op == amx.OpSet {
			continue
		}
		fmt.Printf("  %-7s %#08x\n", upper.String(op.String()), op.Word())
	}
}
