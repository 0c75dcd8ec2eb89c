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

// Package matmul provides matrix multiplication on the AMX coprocessor.
//
// TiledMatMul is the kernel: it maps an n×n product onto 16×16 f32
// outer-product tiles in the Z register file. MatMul picks between the
// kernel and the portable MatMulNaive, and Matrix wraps both behind an
// owned row-major container.
//
// Usage:
//
//	c := make([]float32, n*n)
//	matmul.MatMul(a, b, c, n, n, n)
//
// On hosts without AMX the same code runs through the software model:
//
//	matmul.MatMulUnit(emu.New(), a, b, c, n, n, n)
package matmul
