package paradigmdb

import "testing"

func TestSplitHomonym(t *testing.T) {
	cases := []struct {
		in       string
		wantKey  string
		wantHomo int
	}{
		{"rAma", "rAma", 0},
		{"rAma1", "rAma", 1},
		{"rAma2", "rAma", 2},
		{"", "", 0},
	}
	for _, c := range cases {
		key, homo := splitHomonym(c.in)
		if key != c.wantKey || homo != c.wantHomo {
			t.Errorf("splitHomonym(%q) = %q, %d; want %q, %d", c.in, key, homo, c.wantKey, c.wantHomo)
		}
	}
}

func TestDetectPOS(t *testing.T) {
	cases := []struct {
		in   string
		want PartOfSpeech
	}{
		{"n.", POSNoun},
		{"v.", POSVerb},
		{"a.", POSAdjective},
		{"ind.", POSIndeclinable},
		{"num.", POSNumeral},
		{"pron.", POSPronoun},
		{"unknown", POSUnknown},
	}
	for _, c := range cases {
		if got := detectPOS(c.in); got != c.want {
			t.Errorf("detectPOS(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewLemmaParsing(t *testing.T) {
	l := newLemma("rAma2|deva|||n.|Rama, a hero")
	if l == nil {
		t.Fatal("newLemma returned nil")
	}
	if l.Key != "rAma" || l.HomonymNum != 2 {
		t.Errorf("Key/HomonymNum = %q/%d, want rAma/2", l.Key, l.HomonymNum)
	}
	if l.modelName != "deva" {
		t.Errorf("modelName = %q, want deva", l.modelName)
	}
	if l.POS != POSNoun {
		t.Errorf("POS = %v, want POSNoun", l.POS)
	}
	if l.Gloss != "Rama, a hero" {
		t.Errorf("Gloss = %q, want %q", l.Gloss, "Rama, a hero")
	}
}

func TestLemmaIrregAt(t *testing.T) {
	l := &Lemma{radicals: make(map[int][]*Radical)}
	l.addIrreg(&Irreg{Form: "asti", Exclusive: true, Lemma: l, Morphos: []int{1}})

	form, exclusive := l.irregAt(1)
	if form != "asti" || !exclusive {
		t.Errorf("irregAt(1) = %q, %v; want asti, true", form, exclusive)
	}
	if !l.isExclusiveIrreg(1) {
		t.Error("isExclusiveIrreg(1) = false, want true")
	}
	if _, exclusive := l.irregAt(2); exclusive {
		t.Error("irregAt(2): unexpected exclusive match")
	}
}
