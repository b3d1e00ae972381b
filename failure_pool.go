// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/kmp

package kmp

import "sync"

// failureScratch is pooled storage for the batch matcher's throwaway
// failure table.
type failureScratch struct {
	table []int
}

// failureScratchPool is a pool of batch-scan failure tables.
var failureScratchPool = sync.Pool{
	New: func() any {
		return &failureScratch{}
	},
}

// acquireFailureScratch acquires scratch with a table of exactly m entries.
func acquireFailureScratch(m int) *failureScratch {
	scratch := failureScratchPool.Get().(*failureScratch)
	if cap(scratch.table) < m {
		scratch.table = make([]int, m)
	}
	scratch.table = scratch.table[:m]

	return scratch
}

// releaseFailureScratch releases scratch back to the pool.
func releaseFailureScratch(scratch *failureScratch) {
	if scratch == nil {
		return
	}

	failureScratchPool.Put(scratch)
}
