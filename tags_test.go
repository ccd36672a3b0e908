package sandhisplit

import "testing"

func TestTagMapAddLookup(t *testing.T) {
	tm := NewTagMap()
	tm.Add("एकवचनम्", CategoryNumber, "sg")
	tm.Add("एकवचनम्", CategoryNumberPerson, "np-sg")

	got, ok := tm.Lookup("एकवचनम्", CategoryNumber)
	if !ok || got != "sg" {
		t.Errorf("Lookup(CategoryNumber) = %q, %v, want %q, true", got, ok, "sg")
	}
	got, ok = tm.Lookup("एकवचनम्", CategoryNumberPerson)
	if !ok || got != "np-sg" {
		t.Errorf("Lookup(CategoryNumberPerson) = %q, %v, want %q, true", got, ok, "np-sg")
	}
}

// The duplicate-key bug in the source tagmap: a flat map would collapse
// "एकवचनम्" to whichever of "sg"/"np-sg" was inserted last. Keying by
// (term, category) keeps both codes addressable.
func TestDefaultTagMapDuplicateKeysSurvive(t *testing.T) {
	tm := BuildDefaultTagMap()

	np, ok := tm.Lookup("एकवचनम्", CategoryNumberPerson)
	if !ok || np != "np-sg" {
		t.Errorf("Lookup(CategoryNumberPerson) = %q, %v, want np-sg, true", np, ok)
	}
	n, ok := tm.Lookup("एकवचनम्", CategoryNumber)
	if !ok || n != "sg" {
		t.Errorf("Lookup(CategoryNumber) = %q, %v, want sg, true", n, ok)
	}

	prim, ok := tm.Lookup("प्राथमिकः", CategoryVerbConjugation)
	if !ok || prim != "v-cj-prim" {
		t.Errorf("Lookup(CategoryVerbConjugation) = %q, %v, want v-cj-prim, true", prim, ok)
	}
	kr, ok := tm.Lookup("प्राथमिकः", CategoryKrdantaConjugation)
	if !ok || kr != "kr-cj-prim-no" {
		t.Errorf("Lookup(CategoryKrdantaConjugation) = %q, %v, want kr-cj-prim-no, true", kr, ok)
	}
}

// कर्तरि is a genuine ambiguity (not a section collision) in the source:
// the same term denotes two different voices with no disambiguating key,
// resolved here by splitting on the voice it actually names.
func TestDefaultTagMapVoiceAmbiguity(t *testing.T) {
	tm := BuildDefaultTagMap()

	para, ok := tm.Lookup("कर्तरि", CategoryVoiceActive)
	if !ok || para != "para" {
		t.Errorf("Lookup(CategoryVoiceActive) = %q, %v, want para, true", para, ok)
	}
	atma, ok := tm.Lookup("कर्तरि", CategoryVoiceMiddle)
	if !ok || atma != "atma" {
		t.Errorf("Lookup(CategoryVoiceMiddle) = %q, %v, want atma, true", atma, ok)
	}
}

func TestTagMapLookupMiss(t *testing.T) {
	tm := NewTagMap()
	if _, ok := tm.Lookup("absent", CategoryGender); ok {
		t.Error("Lookup on empty TagMap: expected ok=false")
	}
}
