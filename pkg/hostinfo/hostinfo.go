// Package hostinfo samples basic hardware facts for timing report metadata.
package hostinfo

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the machine a timing session ran on.
type Info struct {
	CPUModel     string
	LogicalCores int
	MemTotal     uint64
	MemUsed      uint64
}

// Collect samples CPU and memory facts. Sampling failures leave the
// corresponding fields zero; timing runs never fail on host inspection.
func Collect() Info {
	info := Info{
		LogicalCores: runtime.NumCPU(),
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemTotal = vm.Total
		info.MemUsed = vm.Used
	}
	return info
}
