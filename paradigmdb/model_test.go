package paradigmdb

import (
	"reflect"
	"testing"
)

func TestListI(t *testing.T) {
	cases := []struct {
		in   string
		want []int
	}{
		{"1", []int{1}},
		{"1,2,3", []int{1, 2, 3}},
		{"1-3", []int{1, 2, 3}},
		{"1,4-6", []int{1, 4, 5, 6}},
	}
	for _, c := range cases {
		got := ListI(c.in)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ListI(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestModelEstUn(t *testing.T) {
	parent := newModel("deva")
	child := &Model{Name: "devaSubclass", parent: parent, RadicalRules: map[int]string{}, Desinences: map[int][]*Desinence{}}

	if !child.EstUn("devaSubclass") {
		t.Error("EstUn(self) = false, want true")
	}
	if !child.EstUn("deva") {
		t.Error("EstUn(parent) = false, want true")
	}
	if child.EstUn("nadI") {
		t.Error("EstUn(unrelated) = true, want false")
	}
}

func TestModelPOSFromAncestry(t *testing.T) {
	m := newModel("deva")
	if got := m.POS(); got != POSNoun {
		t.Errorf("deva.POS() = %v, want POSNoun", got)
	}

	v := newModel("bhU")
	if got := v.POS(); got != POSVerb {
		t.Errorf("bhU.POS() = %v, want POSVerb", got)
	}
}

func TestModelPOSExplicitOverridesAncestry(t *testing.T) {
	m := newModel("deva")
	m.pos = 'v'
	if got := m.POS(); got != POSVerb {
		t.Errorf("explicit pos override = %v, want POSVerb", got)
	}
}
