package document

import (
	"reflect"
	"testing"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		from, to int
		expected []string
	}{
		{
			name:     "move forward",
			input:    []string{"a", "b", "c", "d"},
			from:     0,
			to:       2,
			expected: []string{"b", "c", "a", "d"},
		},
		{
			name:     "move backward",
			input:    []string{"a", "b", "c", "d"},
			from:     3,
			to:       0,
			expected: []string{"d", "a", "b", "c"},
		},
		{
			name:     "adjacent swap",
			input:    []string{"a", "b"},
			from:     0,
			to:       1,
			expected: []string{"b", "a"},
		},
		{
			name:     "same position",
			input:    []string{"a", "b", "c"},
			from:     1,
			to:       1,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "negative from",
			input:    []string{"a", "b", "c"},
			from:     -1,
			to:       1,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "from past end",
			input:    []string{"a", "b", "c"},
			from:     3,
			to:       0,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "to past end",
			input:    []string{"a", "b", "c"},
			from:     0,
			to:       3,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty list",
			input:    []string{},
			from:     0,
			to:       0,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Move(tt.input, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Move(%v, %d, %d) = %v, expected %v", tt.input, tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

// TestMovePreservesElements verifies the element count and multiset are
// unchanged for every in-bounds pair and that the moved element lands
// at the target position.
func TestMovePreservesElements(t *testing.T) {
	input := []int{10, 20, 30, 40, 50}

	for from := 0; from < len(input); from++ {
		for to := 0; to < len(input); to++ {
			got := Move(input, from, to)
			if len(got) != len(input) {
				t.Fatalf("Move(%d, %d): length %d, expected %d", from, to, len(got), len(input))
			}
			if got[to] != input[from] {
				t.Errorf("Move(%d, %d): element at target is %d, expected %d", from, to, got[to], input[from])
			}

			counts := map[int]int{}
			for _, v := range got {
				counts[v]++
			}
			for _, v := range input {
				counts[v]--
			}
			for v, c := range counts {
				if c != 0 {
					t.Errorf("Move(%d, %d): element %d count off by %d", from, to, v, c)
				}
			}
		}
	}
}

// TestMoveRelativeOrder verifies all elements other than the moved one
// keep their relative order.
func TestMoveRelativeOrder(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}
	got := Move(input, 1, 4)

	rest := []int{}
	for _, v := range got {
		if v != 2 {
			rest = append(rest, v)
		}
	}
	expected := []int{1, 3, 4, 5, 6}
	if !reflect.DeepEqual(rest, expected) {
		t.Errorf("relative order broken: %v, expected %v", rest, expected)
	}
}

func TestMoveReturnsCopy(t *testing.T) {
	input := []string{"a", "b", "c"}
	got := Move(input, 5, 0)
	got[0] = "z"
	if input[0] != "a" {
		t.Error("Move returned a slice aliasing the input")
	}
}
