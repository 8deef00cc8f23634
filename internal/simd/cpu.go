package simd

import "golang.org/x/sys/cpu"

// detectCapability resolves the one process-wide flag this package
// keeps: whether the CPU has the SIMD feature the word-wise scans
// are written against (NEON on arm64, AVX2 on amd64). It runs once,
// at package init, and the result is cached in the read-only
// capability var — never re-probed per call.
func detectCapability() bool {
	return cpu.ARM64.HasASIMD || cpu.X86.HasAVX2
}
