package arbor

// FlexItem describes one child along a Tile's main axis.
type FlexItem struct {
	Min, Max float64
	Span     float64
}

// Distribute divides extent among items.
//
// Each item first receives its span-proportional share clamped to
// [Min, Max]. If the shares overshoot, the excess is taken equally from
// every item still above its minimum; an item that would drop below its
// minimum is pinned there (in index order) and the remaining excess is
// spread over the others. If the shares fall short, the shortfall is
// handed out in proportion to span among items still below their maximum,
// pinning at maximum the same way.
//
// The result sums to extent whenever the sum of minimums <= extent <= the
// sum of maximums. Below the sum of minimums every item gets its minimum
// and the total overflows; above the sum of maximums every item gets its
// maximum.
func Distribute(extent float64, items []FlexItem) []float64 {
	alloc := make([]float64, len(items))
	if len(items) == 0 {
		return alloc
	}
	var totalSpan float64
	for _, it := range items {
		totalSpan += spanWeight(it.Span)
	}
	for i, it := range items {
		var ideal float64
		if totalSpan > 0 {
			ideal = extent * spanWeight(it.Span) / totalSpan
		}
		alloc[i] = clamp(ideal, it.Min, it.Max)
	}

	switch total := sum(alloc); {
	case total > extent:
		shrink(extent, items, alloc)
	case total < extent:
		grow(extent, items, alloc)
	}
	return alloc
}

func spanWeight(s float64) float64 {
	if s < 0 {
		return 0
	}
	return s
}

func sum(v []float64) float64 {
	var t float64
	for _, x := range v {
		t += x
	}
	return t
}

func shrink(extent float64, items []FlexItem, alloc []float64) {
	flexible := make([]bool, len(items))
	count := 0
	for i := range items {
		if alloc[i] > items[i].Min {
			flexible[i] = true
			count++
		}
	}
	for count > 0 {
		deficit := sum(alloc) - extent
		if deficit <= 0 {
			return
		}
		adjust := deficit / float64(count)
		pinned := false
		for i := range items {
			if flexible[i] && alloc[i]-adjust < items[i].Min {
				alloc[i] = items[i].Min
				flexible[i] = false
				count--
				pinned = true
			}
		}
		if !pinned {
			for i := range items {
				if flexible[i] {
					alloc[i] -= adjust
				}
			}
			return
		}
	}
}

func grow(extent float64, items []FlexItem, alloc []float64) {
	growable := make([]bool, len(items))
	count := 0
	for i := range items {
		if alloc[i] < items[i].Max {
			growable[i] = true
			count++
		}
	}
	for count > 0 {
		surplus := extent - sum(alloc)
		if surplus <= 0 {
			return
		}
		var weights float64
		for i := range items {
			if growable[i] {
				weights += spanWeight(items[i].Span)
			}
		}
		n := float64(count)
		share := func(i int) float64 {
			if weights > 0 {
				return surplus * spanWeight(items[i].Span) / weights
			}
			return surplus / n
		}
		pinned := false
		for i := range items {
			if growable[i] && alloc[i]+share(i) > items[i].Max {
				alloc[i] = items[i].Max
				growable[i] = false
				count--
				pinned = true
			}
		}
		if !pinned {
			for i := range items {
				if growable[i] {
					alloc[i] += share(i)
				}
			}
			return
		}
	}
}
