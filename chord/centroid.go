package chord

// Extract converts one chord's raw record into three comparable centroids.
//
// Algorithm, per variant group v ∈ {0,1,2} (base offset 7·v):
//  1. fret = 0 if the fret cell is absent, else rawFret-1.
//  2. rawFret present and > MaxFret ⇒ Sentinel, skip steps 3–4.
//  3. For each of the six finger cells: present x adds (fret+x) to the sum
//     and counts; absent decrements the divisor (starting at 6).
//  4. centroid = sum/divisor, or 0 when every finger slot is unplayed.
//  5. Variants 1 and 2 are forced to Sentinel when their first five finger
//     cells (fields 8..12 and 15..19) are all absent: the row simply has no
//     second/third placement.
//
// Step 4 keeps a literal quirk: a variant with a playable fret but no played
// finger yields centroid 0 rather than Sentinel.
//
// Complexity: O(RecordSize).
func Extract(r *Record) Centroids {
	var out Centroids
	for v := 0; v < Variants; v++ {
		out[v] = groupCentroid(r.Group(v))
	}

	// Missing second/third placements.
	if blockAbsent(r[GroupSize+1 : GroupSize+6]) {
		out[1] = Sentinel
	}
	if blockAbsent(r[2*GroupSize+1 : 2*GroupSize+6]) {
		out[2] = Sentinel
	}

	return out
}

// groupCentroid computes steps 1–4 for a single seven-cell group.
func groupCentroid(g []Field) float64 {
	raw := g[0]
	fret := 0.0
	if raw.Present {
		fret = raw.Value - 1
	}
	if raw.Present && raw.Value > MaxFret {
		return Sentinel
	}

	var (
		sum     float64
		divisor = Fingers
	)
	for _, f := range g[1:] {
		if !f.Present {
			divisor--
			continue
		}
		sum += fret + f.Value
	}
	if divisor == 0 {
		return 0
	}

	return sum / float64(divisor)
}

// blockAbsent reports whether every cell in fs is absent.
func blockAbsent(fs []Field) bool {
	for _, f := range fs {
		if f.Present {
			return false
		}
	}
	return true
}
