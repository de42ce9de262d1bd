package util

import "runtime"

// PoolSize returns how many workers to start for n independent jobs.
//
// Formula: min(max(runtime.NumCPU(), 2), 16, n), never below 1.
//
// Token sources are small and parsing is CPU-bound, so one worker per core
// is enough; the cap keeps goroutine churn bounded on large machines.
func PoolSize(n int) int {
	size := runtime.NumCPU()
	if size < 2 {
		size = 2
	}
	if size > 16 {
		size = 16
	}
	if n < size {
		size = n
	}
	if size < 1 {
		size = 1
	}
	return size
}
