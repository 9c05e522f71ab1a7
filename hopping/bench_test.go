// SPDX-License-Identifier: MIT
// Package hopping_test provides benchmarks for block assembly and conversion.
package hopping_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/hopblocks/hopping"
)

// benchSites are the site counts to benchmark.
var benchSites = []int{1 << 10, 1 << 16, 1 << 20}

// sinks to defeat dead-code elimination
var (
	sinkCSR   *hopping.CSR
	sinkStore *hopping.Store
)

// BenchmarkAdd compares single inserts with and without reservation.
func BenchmarkAdd(b *testing.B) {
	for _, reserve := range []bool{false, true} {
		b.Run(fmt.Sprintf("reserve=%t", reserve), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s, _ := hopping.New(1<<16, 2)
				if reserve {
					s.Reserve([]int{1 << 16, 1 << 16})
				}
				for j := 0; j < 1<<16; j++ {
					s.Add(0, j, (j+1)&(1<<16-1))
					s.Add(1, (j+1)&(1<<16-1), j)
				}
				sinkStore = s
			}
		})
	}
}

// BenchmarkAppend measures bulk insertion of one family at a time.
func BenchmarkAppend(b *testing.B) {
	const n = 1 << 16
	rows := make([]hopping.Index, n)
	cols := make([]hopping.Index, n)
	for j := range rows {
		rows[j] = hopping.Index(j)
		cols[j] = hopping.Index((j + 1) % n)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, _ := hopping.New(n, 2)
		s.Append(0, rows, cols)
		s.Append(1, cols, rows)
		sinkStore = s
	}
}

// BenchmarkToCSR measures conversion of a ring store of growing size.
func BenchmarkToCSR(b *testing.B) {
	for _, n := range benchSites {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			s := ringStore(b, n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR = s.ToCSR()
			}
		})
	}
}
