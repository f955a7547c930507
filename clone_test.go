package fathom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type document struct {
	Title string
	Tags  []string
	Meta  map[string]int
	Next  *document
}

func TestClone_Fidelity(t *testing.T) {
	src := document{
		Title: "root",
		Tags:  []string{"a", "b"},
		Meta:  map[string]int{"rev": 3},
		Next:  &document{Title: "child"},
	}

	out := Clone(src)

	if !Equal(src, out) {
		t.Error("clone must be Equal to its source")
	}
	if diff := cmp.Diff(src, out); diff != "" {
		t.Errorf("clone differs from source (-src +clone):\n%s", diff)
	}
}

func TestClone_Isolation(t *testing.T) {
	src := document{
		Title: "root",
		Tags:  []string{"a", "b"},
		Meta:  map[string]int{"rev": 3},
		Next:  &document{Title: "child"},
	}

	out := Clone(src)
	out.Tags[0] = "mutated"
	out.Meta["rev"] = 99
	out.Next.Title = "mutated"

	if src.Tags[0] != "a" {
		t.Error("mutating the clone's sequence reached the source")
	}
	if src.Meta["rev"] != 3 {
		t.Error("mutating the clone's map reached the source")
	}
	if src.Next.Title != "child" {
		t.Error("mutating the clone's referent reached the source")
	}
}

func TestClone_NilStaysNil(t *testing.T) {
	src := document{Title: "only"}
	out := Clone(src)
	if out.Next != nil {
		t.Error("absent reference must stay absent")
	}
	if out.Tags != nil {
		t.Error("nil sequence must stay nil")
	}
	if out.Meta != nil {
		t.Error("nil map must stay nil")
	}
}

func TestClone_TextAliases(t *testing.T) {
	// Strings are immutable content; assignment is the documented
	// aliasing policy and needs no fresh storage.
	src := "shared"
	out := Clone(src)
	if out != src {
		t.Error("text content must survive cloning")
	}
}

func TestClone_CyclePreserved(t *testing.T) {
	a := &link{Label: "a"}
	b := &link{Label: "b"}
	a.Peer = b
	b.Peer = a

	out := Clone(a)

	if out == a {
		t.Fatal("clone must allocate a new referent")
	}
	if out.Peer == b {
		t.Error("clone must not alias the source's substructure")
	}
	if out.Peer.Peer != out {
		t.Error("clone must reproduce the cycle, not unroll it")
	}
	if out.Label != "a" || out.Peer.Label != "b" {
		t.Error("cycle clone lost field values")
	}
}

func TestClone_SharedSubstructureStaysShared(t *testing.T) {
	shared := &document{Title: "shared"}
	src := []*document{shared, shared}

	out := Clone(src)
	if out[0] != out[1] {
		t.Error("two references to one source value must clone to one shared value")
	}
	if out[0] == shared {
		t.Error("the shared value itself must still be copied")
	}
}

func TestClone_NaNKeyedMapFidelity(t *testing.T) {
	src := map[float64]int{math.NaN(): 1, 2.5: 7}
	out := Clone(src)

	if len(out) != 2 {
		t.Fatalf("clone has %d entries, want 2", len(out))
	}
	if out[2.5] != 7 {
		t.Error("ordinary entry lost in clone")
	}
	if !Equal(src, out) {
		t.Error("clone of a NaN-keyed map must be Equal to its source")
	}
}

func TestClone_SkippedFieldZero(t *testing.T) {
	type cached struct {
		ID    string
		Cache map[string]int `deep:"skip"`
	}
	src := cached{ID: "x", Cache: map[string]int{"hot": 1}}
	out := Clone(src)
	if out.Cache != nil {
		t.Error("skipped fields stay zero in the copy")
	}
	if out.ID != "x" {
		t.Error("ordinary fields must still be copied")
	}
}

func TestClone_ShallowFieldAliases(t *testing.T) {
	type pooled struct {
		ID  string
		Buf []byte `deep:"shallow"`
	}
	src := pooled{ID: "x", Buf: []byte("backing")}
	out := Clone(src)

	out.Buf[0] = 'B'
	if src.Buf[0] != 'B' {
		t.Error("shallow fields alias the source storage by declaration")
	}
}

func TestClone_OverrideUsed(t *testing.T) {
	g := goodOverrides{N: 9}
	out := Clone(g)
	if out.N != 9 {
		t.Error("clone override must be called")
	}
}

func TestCloneInto_SelfAssignment(t *testing.T) {
	e, err := New[document]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	v := document{
		Title: "self",
		Tags:  []string{"a"},
		Next:  &document{Title: "child"},
	}

	// Copy-into-self: the clone is materialized before v is written, so
	// no field-by-field overwrite can corrupt the source mid-copy.
	e.CloneInto(&v, &v)

	if v.Title != "self" || v.Tags[0] != "a" || v.Next.Title != "child" {
		t.Errorf("copy-into-self corrupted the value: %+v", v)
	}
}

func TestCloneInto_Distinct(t *testing.T) {
	e, err := New[document]()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	src := document{Title: "src", Tags: []string{"a"}}
	var dst document
	e.CloneInto(&dst, &src)

	if !e.Equal(dst, src) {
		t.Error("CloneInto result must be Equal to the source")
	}
	dst.Tags[0] = "mutated"
	if src.Tags[0] != "a" {
		t.Error("CloneInto must produce independent storage")
	}
}
