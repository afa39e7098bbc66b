package sysinfo

import (
	"errors"
	"fmt"
	"io"

	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
)

var ErrNoCPUInfo = errors.New("no cpu info reported")

// Info describes host the bench runs on. Generation latency is meaningless without it.
type Info struct {
	CPUModel     string
	Cores        int32
	MHz          float64
	LogicalCPUs  int
	MemTotal     uint64
	MemAvailable uint64

	// Collection errors, nil if corresponding part is available.
	CPUErr, MemErr error
}

// Collect gathers host info. Unavailable parts are reported in CPUErr/MemErr and never fail the collection.
func Collect() Info {
	var info Info
	if cpus, err := gcpu.Info(); err != nil {
		info.CPUErr = err
	} else if len(cpus) == 0 {
		info.CPUErr = ErrNoCPUInfo
	} else {
		info.CPUModel, info.Cores, info.MHz = cpus[0].ModelName, cpus[0].Cores, cpus[0].Mhz
	}
	if n, err := gcpu.Counts(true); err == nil {
		info.LogicalCPUs = n
	}
	if vm, err := gmem.VirtualMemory(); err != nil {
		info.MemErr = err
	} else {
		info.MemTotal, info.MemAvailable = vm.Total, vm.Available
	}
	return info
}

// Write writes host info lines to w.
func (i Info) Write(w io.Writer) error {
	var err error
	if i.CPUErr != nil {
		_, err = fmt.Fprintln(w, "CPU Info: Unable to retrieve CPU information")
	} else {
		_, err = fmt.Fprintf(w, "CPU Info: Model: %s, Cores: %d, Logical: %d, Frequency: %.2f MHz\n",
			i.CPUModel, i.Cores, i.LogicalCPUs, i.MHz)
	}
	if err != nil {
		return err
	}
	if i.MemErr != nil || i.MemTotal == 0 {
		_, err = fmt.Fprintln(w, "Memory Info: Unable to retrieve memory information")
	} else {
		_, err = fmt.Fprintf(w, "Memory Info: Total: %d MiB, Available: %.1f%%\n",
			i.MemTotal>>20, float64(i.MemAvailable)/float64(i.MemTotal)*100)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
