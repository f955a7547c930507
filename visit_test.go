package fathom

import (
	"reflect"
	"testing"
)

func TestIdentify(t *testing.T) {
	v := 1
	p := &v
	m := map[string]int{"a": 1}
	s := []int{1, 2}

	if _, ok := identify(reflect.ValueOf(p)); !ok {
		t.Error("pointer must have an identity")
	}
	if _, ok := identify(reflect.ValueOf(m)); !ok {
		t.Error("map must have an identity")
	}
	if _, ok := identify(reflect.ValueOf(s)); !ok {
		t.Error("non-empty slice must have an identity")
	}
	if _, ok := identify(reflect.ValueOf([]int{})); ok {
		t.Error("empty slice cannot participate in a cycle")
	}
	if _, ok := identify(reflect.ValueOf(1)); ok {
		t.Error("scalars have no identity")
	}
	if _, ok := identify(reflect.ValueOf((*int)(nil))); ok {
		t.Error("nil pointer has no identity")
	}
}

func TestIdentify_ReslicesDistinct(t *testing.T) {
	s := []int{1, 2, 3}
	a, _ := identify(reflect.ValueOf(s[0:2]))
	b, _ := identify(reflect.ValueOf(s[0:3]))
	if a == b {
		t.Error("reslices of one backing array with different lengths must have distinct identities")
	}
}

func TestPairVisits_PathScoped(t *testing.T) {
	var vs pairVisits
	a := ident{ptr: 1}
	b := ident{ptr: 2}

	if vs.enter(a, b) {
		t.Fatal("first enter must not report a revisit")
	}
	if !vs.enter(a, b) {
		t.Error("second enter on the same path must report a revisit")
	}
	vs.leave(a, b)
	if vs.enter(a, b) {
		t.Error("after leave the pair is no longer on the path")
	}
}

func TestPairVisits_Directional(t *testing.T) {
	var vs pairVisits
	a := ident{ptr: 1}
	b := ident{ptr: 2}

	vs.enter(a, b)
	if vs.enter(b, a) {
		t.Error("the reversed pair is a different pair")
	}
}

func TestSoloVisits(t *testing.T) {
	var vs soloVisits
	id := ident{ptr: 7}

	if vs.enter(id) {
		t.Fatal("first enter must not report a revisit")
	}
	if !vs.enter(id) {
		t.Error("second enter must report a revisit")
	}
	vs.leave(id)
	if vs.enter(id) {
		t.Error("after leave the identity is no longer on the path")
	}
}
