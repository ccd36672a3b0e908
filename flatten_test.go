package sandhisplit

import (
	"reflect"
	"testing"
)

func TestFlattenTerminal(t *testing.T) {
	trees := []*SplitTree{{Lemma: "rAmaH"}}
	got := Flatten(trees)
	want := [][]string{{"rAmaH"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten(terminal) = %v, want %v", got, want)
	}
}

func TestFlattenNested(t *testing.T) {
	trees := []*SplitTree{
		{
			Lemma: "guru",
			Subtrees: []*SplitTree{
				{Lemma: "upadeSaH"},
			},
		},
	}
	got := Flatten(trees)
	want := [][]string{{"guru", "upadeSaH"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten(nested) = %v, want %v", got, want)
	}
}

func TestFlattenMultipleChoicePoints(t *testing.T) {
	trees := []*SplitTree{
		{Lemma: "tat", Subtrees: []*SplitTree{{Lemma: "tvamasi"}}},
		{Lemma: "tattvamasi"},
	}
	got := Flatten(trees)
	want := [][]string{
		{"tat", "tvamasi"},
		{"tattvamasi"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten(choice points) = %v, want %v", got, want)
	}
}

func TestSortByLongestSegment(t *testing.T) {
	splits := [][]string{
		{"a", "b"},
		{"tattvamasi"},
		{"tat", "tvam", "asi"},
	}
	SortByLongestSegment(splits)
	if splits[0][0] != "tattvamasi" {
		t.Errorf("SortByLongestSegment: longest-segment sequence not first, got %v", splits)
	}
}

func TestFlattenIdempotent(t *testing.T) {
	tree := &SplitTree{Lemma: "eka"}
	first := Flatten([]*SplitTree{tree})
	second := Flatten([]*SplitTree{tree})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Flatten not idempotent: %v vs %v", first, second)
	}
	if len(first) != 1 || len(first[0]) != 1 || first[0][0] != "eka" {
		t.Errorf("Flatten(single leaf) = %v, want [[eka]]", first)
	}
}
