package trainer

import "fmt"

import "github.com/klauspost/cpuid/v2"

// HostInfo describes the processor training runs on.
func HostInfo() string {
	return fmt.Sprintf("%s, %d logical cores, avx2 %v, avx512 %v",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores,
		cpuid.CPU.Supports(cpuid.AVX2), cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512DQ))
}
