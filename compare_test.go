package fathom

import (
	"math"
	"testing"
)

func TestCompare_Scalars(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"less", 1, 2, -1},
		{"equal", 2, 2, 0},
		{"greater", 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompare_Bool(t *testing.T) {
	if Compare(false, true) != -1 {
		t.Error("false must order before true")
	}
	if Compare(true, false) != 1 {
		t.Error("true must order after false")
	}
	if Compare(true, true) != 0 {
		t.Error("Compare(true, true) != 0")
	}
}

func TestCompare_NaN(t *testing.T) {
	if Compare(math.NaN(), math.NaN()) != 0 {
		t.Error("NaN-vs-NaN must order equal, consistent with equality")
	}
	if Compare(math.NaN(), -math.MaxFloat64) != -1 {
		t.Error("NaN must order before every ordinary value")
	}
	if Compare(1.0, math.NaN()) != 1 {
		t.Error("an ordinary value must order after NaN")
	}
}

func TestCompare_Text(t *testing.T) {
	if Compare("abc", "abd") != -1 {
		t.Error(`Compare("abc", "abd") != -1`)
	}
	if Compare("b", "a") != 1 {
		t.Error(`Compare("b", "a") != 1`)
	}
	if Compare("same", "same") != 0 {
		t.Error(`Compare("same", "same") != 0`)
	}
}

func TestCompare_AbsentBeforePresent(t *testing.T) {
	v := 1
	if Compare[*int](nil, &v) != -1 {
		t.Error("absent must order strictly before present")
	}
	if Compare[*int](&v, nil) != 1 {
		t.Error("present must order strictly after absent")
	}
	if Compare[*int](nil, nil) != 0 {
		t.Error("two absent references must order equal")
	}
}

func TestCompare_SequencePrefix(t *testing.T) {
	// A true prefix orders before the longer sequence.
	if Compare([]int{1, 2}, []int{1, 2, 3}) != -1 {
		t.Error("prefix must order before its extension")
	}
	if Compare([]int{1, 3}, []int{1, 2, 9}) != 1 {
		t.Error("first differing element must decide")
	}
	if Compare([]int{1, 2}, []int{1, 2}) != 0 {
		t.Error("equal sequences must order equal")
	}
}

func TestCompare_Records(t *testing.T) {
	// Scenario: field X is declared first, so 1 < 2 decides before Y.
	if got := Compare(pair{1, "a"}, pair{2, "a"}); got != -1 {
		t.Errorf("Compare(pair{1,a}, pair{2,a}) = %d, want -1", got)
	}
	if got := Compare(pair{1, "b"}, pair{1, "a"}); got != 1 {
		t.Errorf("first nonzero field result must win, got %d", got)
	}
}

func TestCompare_MapsBySortedKeys(t *testing.T) {
	// Sorted key sequence decides before values.
	a := map[string]int{"a": 9}
	b := map[string]int{"b": 1}
	if Compare(a, b) != -1 {
		t.Error(`{"a":9} must order before {"b":1} on keys`)
	}

	// Matching keys fall through to values.
	c := map[string]int{"a": 1}
	d := map[string]int{"a": 2}
	if Compare(c, d) != -1 {
		t.Error(`{"a":1} must order before {"a":2} on values`)
	}

	// A key-sequence prefix orders before the longer map.
	e := map[string]int{"a": 1}
	f := map[string]int{"a": 1, "b": 2}
	if Compare(e, f) != -1 {
		t.Error("smaller map with matching key prefix must order first")
	}
}

func TestCompare_MapInsertionOrderIndependent(t *testing.T) {
	a := map[string]int{}
	a["x"] = 1
	a["y"] = 2

	b := map[string]int{}
	b["y"] = 2
	b["x"] = 1

	if Compare(a, b) != 0 {
		t.Error("equal maps must order equal regardless of insertion history")
	}
}

func TestCompare_NaNKeyedMapAgreesWithEqual(t *testing.T) {
	a := map[float64]int{math.NaN(): 1, 2.5: 7}
	b := map[float64]int{math.NaN(): 1, 2.5: 7}
	if got := Compare(a, b); got != 0 {
		t.Errorf("Compare = %d, want 0 for equal NaN-keyed maps", got)
	}
	if Equal(a, b) != (Compare(a, b) == 0) {
		t.Error("Compare == 0 must agree with Equal on NaN-keyed maps")
	}

	c := map[float64]int{math.NaN(): 9, 2.5: 7}
	if Equal(a, c) != (Compare(a, c) == 0) {
		t.Error("Compare == 0 must agree with Equal when a NaN-keyed value differs")
	}
}

func TestCompare_EqualConsistency(t *testing.T) {
	values := []pair{
		{1, "a"},
		{1, "b"},
		{2, "a"},
		{2, "b"},
	}
	for _, a := range values {
		for _, b := range values {
			eq := Equal(a, b)
			zero := Compare(a, b) == 0
			if eq != zero {
				t.Errorf("Equal(%v, %v) = %v but Compare == 0 is %v", a, b, eq, zero)
			}
		}
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	a := pair{1, "a"}
	b := pair{2, "z"}
	if Compare(a, b) != -Compare(b, a) {
		t.Error("Compare(a, b) must equal -Compare(b, a)")
	}
}

func TestCompare_TwoNodeCycleTerminates(t *testing.T) {
	a1 := &link{Label: "a"}
	b1 := &link{Label: "b"}
	a1.Peer = b1
	b1.Peer = a1

	a2 := &link{Label: "a"}
	b2 := &link{Label: "b"}
	a2.Peer = b2
	b2.Peer = a2

	if Compare(a1, a2) != 0 {
		t.Error("isomorphic cycles must order equal")
	}

	b2.Label = "c"
	if Compare(a1, a2) != -1 {
		t.Error("a field difference inside the cycle must decide the order")
	}
}
