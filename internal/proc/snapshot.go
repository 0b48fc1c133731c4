// Package proc produces point-in-time snapshots of the OS process table.
package proc

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shirou/gopsutil/v3/process"
)

// Record describes one running process at snapshot time.
//
// Records carry no identity across snapshots: a refresh replaces the whole
// list and any index held by the caller must be re-checked against it.
type Record struct {
	// PID is the process identifier as text.
	PID string
	// Name is the process name.
	Name string
	// Exe is the resolved executable path, or empty when unavailable.
	Exe string
}

// DisplayText formats the record for a single list row.
func (r Record) DisplayText() string {
	if r.Exe != "" {
		return fmt.Sprintf("%s (%s) - %s", r.Name, r.PID, r.Exe)
	}
	return fmt.Sprintf("%s (%s)", r.Name, r.PID)
}

// Enumerator lists the currently running processes.
type Enumerator interface {
	Processes() ([]Record, error)
}

// Snapshot enumerates running processes and returns them sorted by name.
// The sort is stable so processes sharing a name keep enumeration order.
// An enumeration failure yields an empty list rather than an error: the
// caller sees "no processes available" and can retry with a refresh.
func Snapshot(e Enumerator) []Record {
	records, err := e.Processes()
	if err != nil {
		return nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})
	return records
}

// SystemEnumerator reads the live OS process table via gopsutil.
type SystemEnumerator struct{}

// Processes returns a record per running process. Entries that disappear or
// deny access mid-enumeration are skipped; a missing executable path leaves
// Exe empty rather than dropping the entry.
func (SystemEnumerator) Processes() ([]Record, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		exe, err := p.Exe()
		if err != nil {
			exe = ""
		}
		records = append(records, Record{
			PID:  strconv.Itoa(int(p.Pid)),
			Name: name,
			Exe:  exe,
		})
	}
	return records, nil
}
