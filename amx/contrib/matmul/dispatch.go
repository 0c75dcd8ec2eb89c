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

package matmul

import (
	"k8s.io/klog/v2"

	"github.com/ajroetker/go-amx/amx"
)

// tiledApplies reports whether the tiled kernel can take an m×k by k×n
// product: it only handles square operands of equal size.
func tiledApplies(m, n, k int) bool {
	return m > 0 && m == n && n == k
}

// MatMul computes C = A * B where A is m×k, B is k×n and C is m×n, all
// row-major. Square products run on the host coprocessor when Detect
// reports one, under a single guard for the whole call; everything else,
// and every product on hosts without AMX, uses MatMulNaive.
//
// It panics if any slice is too short for its shape.
func MatMul(a, b, c []float32, m, n, k int) {
	checkShapes("MatMul", a, b, c, m, n, k)
	if tiledApplies(m, n, k) {
		if g, err := amx.Acquire(); err == nil {
			defer g.Release()
			klog.V(2).Infof("matmul: %dx%d tiled on %s", n, n, amx.Detect())
			TiledMatMul(g, a, b, c, n)
			return
		}
	}
	klog.V(2).Infof("matmul: %dx%dx%d naive", m, n, k)
	matmulScalar(a, b, c, m, n, k)
}

// MatMulUnit is MatMul on an explicit unit, typically a software model.
// The unit is used whenever the product is square; no probe is made.
func MatMulUnit(u amx.Unit, a, b, c []float32, m, n, k int) {
	checkShapes("MatMulUnit", a, b, c, m, n, k)
	if !tiledApplies(m, n, k) {
		matmulScalar(a, b, c, m, n, k)
		return
	}
	g := amx.AcquireUnit(u)
	defer g.Release()
	TiledMatMul(g, a, b, c, n)
}

// MatMul64 is MatMul for float64, tiled with FMA64.
func MatMul64(a, b, c []float64, m, n, k int) {
	checkShapes("MatMul64", a, b, c, m, n, k)
	if tiledApplies(m, n, k) {
		if g, err := amx.Acquire(); err == nil {
			defer g.Release()
			TiledMatMul64(g, a, b, c, n)
			return
		}
	}
	matmulScalar(a, b, c, m, n, k)
}

// MatMulUnit64 is MatMulUnit for float64.
func MatMulUnit64(u amx.Unit, a, b, c []float64, m, n, k int) {
	checkShapes("MatMulUnit64", a, b, c, m, n, k)
	if !tiledApplies(m, n, k) {
		matmulScalar(a, b, c, m, n, k)
		return
	}
	g := amx.AcquireUnit(u)
	defer g.Release()
	TiledMatMul64(g, a, b, c, n)
}
