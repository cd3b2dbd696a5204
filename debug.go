package arbor

import (
	"fmt"
	"os"
	"time"
)

// globalDebug is set by View.SetDebugMode. Checks that are too costly for
// release builds (cycle detection, limit validation) test it first.
var globalDebug bool

// debugStats holds per-frame timing metrics.
// Only populated when the View is in debug mode.
type debugStats struct {
	layoutTime time.Duration
	drawTime   time.Duration
	timersRun  int
	animations int
	dirty      Rect
}

// debugLog prints timing stats to stderr.
func (v *View) debugLog(stats debugStats) {
	if !v.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[arbor] layout: %v | draw: %v | total: %v\n",
		stats.layoutTime, stats.drawTime, stats.layoutTime+stats.drawTime)
	_, _ = fmt.Fprintf(os.Stderr,
		"[arbor] timers: %d | animations: %d | dirty: %.0fx%.0f at %.0f,%.0f\n",
		stats.timersRun, stats.animations,
		stats.dirty.Width, stats.dirty.Height, stats.dirty.X, stats.dirty.Y)
}

// debugCheckCycle panics when adding e under owner would make the tree
// cyclic.
func debugCheckCycle(owner, e Element) {
	if e == owner {
		panic("arbor debug: element added to itself")
	}
	if treeContains(e, owner, 0) {
		panic(fmt.Sprintf("arbor debug: adding %T to %T creates a cycle", e, owner))
	}
}

// treeContains reports whether target is reachable from root through
// composite children or proxy subjects. Virtualized lists are not
// searched beyond their realized rows.
func treeContains(root, target Element, depth int) bool {
	if root == nil {
		return false
	}
	if root == target {
		return true
	}
	if depth > debugMaxTreeDepth*4 {
		return false
	}
	switch r := root.(type) {
	case *DynamicList:
		for i := range r.cells {
			if treeContains(r.cells[i].elem, target, depth+1) {
				return true
			}
		}
	case Container:
		for i := 0; i < r.Len(); i++ {
			if treeContains(r.At(i), target, depth+1) {
				return true
			}
		}
	case interface{ Subject() Element }:
		return treeContains(r.Subject(), target, depth+1)
	}
	return false
}

// debugCheckLimits panics when an element reports limits with min > max
// or negative extents.
func debugCheckLimits(e Element, l Limits) {
	if !l.Valid() {
		panic(fmt.Sprintf("arbor debug: %T reported invalid limits %+v", e, l))
	}
}

// debugCheckTreeDepth warns on stderr if the focus chain is deeper than the
// threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(root Element) {
	depth := 0
	for e := root; e != nil; e = e.Focus() {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: focus chain depth %d exceeds %d\n",
			depth, debugMaxTreeDepth)
	}
}

// debugWarnChildCount warns on stderr if a composite has more than 1000
// children. Large collections belong in a DynamicList.
const debugMaxChildCount = 1000

func debugWarnChildCount(n int) {
	_, _ = fmt.Fprintf(os.Stderr, "[arbor] warning: composite has %d children (threshold %d)\n",
		n, debugMaxChildCount)
}
