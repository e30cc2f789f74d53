// Package report renders a snapshot as a human-readable text report.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CristiGvl/picoCPUProbe/internal/snapshot"
)

// Render writes the snapshot to w: a summary block, the physical-core
// topology, per-logical-core details, and the list of supported
// instruction-set extensions.
func Render(w io.Writer, snap *snapshot.Snapshot) error {
	if snap == nil {
		return snapshot.ErrInvalidArgument
	}

	fmt.Fprintf(w, "CPU Brand String : %s\n", snap.BrandName)
	fmt.Fprintf(w, "Physical Cores   : %d\n", len(snap.PhysicalCores))
	fmt.Fprintf(w, "Logical Cores    : %d\n", snap.LogicalCores)
	fmt.Fprintf(w, "L3 Cache         : %d KiB\n\n", snap.L3SizeKiB)

	fmt.Fprintln(w, "Physical Core Topology:")
	for _, core := range snap.PhysicalCores {
		ids := make([]string, len(core.LogicalIndices))
		for i, idx := range core.LogicalIndices {
			ids[i] = strconv.Itoa(idx)
		}
		fmt.Fprintf(w, "  Core %d (%s): %d logical siblings: %s\n",
			core.ID, core.Kind, len(core.LogicalIndices), strings.Join(ids, ", "))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Per-Logical-Core Details:")
	for i := 0; i < snap.LogicalCores; i++ {
		fmt.Fprintf(w, "  Logical Core %2d:\n", i)
		fmt.Fprintf(w, "    Frequency : %4d MHz\n", snap.FrequencyMHz[i])
		fmt.Fprintf(w, "    L1 Cache  : %4d KiB\n", snap.L1PerLogical[i].SizeKiB)
		fmt.Fprintf(w, "    L2 Cache  : %4d KiB (shared with %d cores)\n",
			snap.L2PerLogical[i].SizeKiB, snap.L2PerLogical[i].SharedWith)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Instruction-Set Extensions:")
	for _, name := range snap.Features.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}
