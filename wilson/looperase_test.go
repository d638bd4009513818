package wilson_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ust/wilson"
)

// naiveErase applies the textbook definition literally: cut the earliest
// loop (smallest i, first j > i with trace[i]==trace[j]) until none remain.
func naiveErase(trace []int) []int {
	out := append([]int(nil), trace...)
	for {
		i, j := firstLoop(out)
		if i < 0 {
			return out
		}
		out = append(out[:i:i], out[j:]...)
	}
}

func firstLoop(s []int) (int, int) {
	for i := range s {
		for j := i + 1; j < len(s); j++ {
			if s[i] == s[j] {
				return i, j
			}
		}
	}
	return -1, -1
}

func TestEraseLoops_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		trace []int
		want  []int
	}{
		{"single loop", []int{1, 2, 3, 2, 4}, []int{1, 2, 4}},
		{"already simple", []int{5, 1, 2, 3}, []int{5, 1, 2, 3}},
		{"empty", []int{}, []int{}},
		{"one vertex", []int{7}, []int{7}},
		{"loop through start", []int{1, 2, 1, 2, 3}, []int{1, 2, 3}},
		{"overlapping loops", []int{1, 2, 3, 4, 2, 5, 3, 6}, []int{1, 2, 5, 3, 6}},
		{"nested loops", []int{0, 1, 2, 3, 2, 1, 4}, []int{0, 1, 4}},
		{"returns to start then leaves", []int{3, 4, 5, 3, 9}, []int{3, 9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wilson.EraseLoops(tc.trace)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("EraseLoops(%v) mismatch (-want +got):\n%s", tc.trace, diff)
			}
		})
	}
}

// TestEraseLoops_MatchesDefinition compares the linear pass with the
// quadratic definition on random traces over a small alphabet (many loops).
func TestEraseLoops_MatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 2000; iter++ {
		n := 1 + rng.Intn(40)
		alphabet := 1 + rng.Intn(8)
		trace := make([]int, n)
		for i := range trace {
			trace[i] = rng.Intn(alphabet)
		}
		want := naiveErase(trace)
		got := wilson.EraseLoops(trace)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("trace %v (-naive +linear):\n%s", trace, diff)
		}
	}
}

func TestEraseLoops_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(30)
		trace := make([]int, n)
		for i := range trace {
			trace[i] = rng.Intn(6)
		}
		orig := append([]int(nil), trace...)

		got := wilson.EraseLoops(trace)
		require.Equal(t, orig, trace, "input must not be modified")
		require.LessOrEqual(t, len(got), len(trace))
		require.Equal(t, trace[0], got[0], "first element preserved")
		require.Equal(t, trace[len(trace)-1], got[len(got)-1], "last element preserved")

		seen := make(map[int]bool, len(got))
		for _, v := range got {
			require.False(t, seen[v], "repeated %d in %v", v, got)
			seen[v] = true
		}
		require.Equal(t, got, wilson.EraseLoops(got), "idempotent")
	}
}
