package wilson

// EraseLoops returns the chronological loop erasure of trace.
//
// Definition: find the smallest i such that trace[i] == trace[j] for some
// j > i (take the first such j), replace trace with trace[0..i) + trace[j..],
// and repeat until all elements are distinct. The later occurrence survives.
//
// Implementation: one pass keeping vertex → position in the output so far.
// On a repeat the output is truncated back to (and including) the earlier
// position, which is exactly the state the definition reaches after
// cutting [i, j). Output is identical to the definition, element for element.
//
// Properties: first and last elements are preserved, the result is never
// longer than trace, it is a simple path, and EraseLoops is idempotent.
// trace is not modified.
//
// Complexity: O(len(trace)) expected time and space.
func EraseLoops[V comparable](trace []V) []V {
	out := make([]V, 0, len(trace))
	pos := make(map[V]int, len(trace))
	for _, v := range trace {
		if p, seen := pos[v]; seen {
			for _, w := range out[p+1:] {
				delete(pos, w)
			}
			out = out[:p+1]
			continue
		}
		pos[v] = len(out)
		out = append(out, v)
	}

	return out
}
