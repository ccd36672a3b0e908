package sandhisplit

import "testing"

func newMorphFixture() *Analyzer {
	words := map[string][]Analysis{
		"rAmaH": {
			{Lemma: "rAma", Tags: NewTagset("na-nom", "mas", "sg")},
		},
		"rAmO": {
			{Lemma: "rAma", Tags: NewTagset("na-nom", "mas", "du")},
			{Lemma: "rAma", Tags: NewTagset("na-acc", "mas", "du")},
		},
	}
	return NewAnalyzer(NewLexiconOracleFromWords(words), NewTagMap())
}

func TestAnalyzerTagsOf(t *testing.T) {
	a := newMorphFixture()
	analyses, err := a.TagsOf(NewText("rAmaH", SLP1))
	if err != nil {
		t.Fatalf("TagsOf(rAmaH): %v", err)
	}
	if len(analyses) != 1 || analyses[0].Lemma != "rAma" {
		t.Errorf("TagsOf(rAmaH) = %+v, want one rAma analysis", analyses)
	}
}

func TestAnalyzerTagsOfNotFound(t *testing.T) {
	a := newMorphFixture()
	if _, err := a.TagsOf(NewText("ajita", SLP1)); err != ErrNotFound {
		t.Errorf("TagsOf(ajita) error = %v, want ErrNotFound", err)
	}
}

func TestAnalyzerWordMatchesByTagset(t *testing.T) {
	a := newMorphFixture()
	out, err := a.WordMatches(NewText("rAmO", SLP1), nil, NewTagset("du", "na-acc"))
	if err != nil {
		t.Fatalf("WordMatches: %v", err)
	}
	if len(out) != 1 || !out[0].Tags.Superset(NewTagset("na-acc")) {
		t.Errorf("WordMatches(rAmO, tags=du,na-acc) = %+v", out)
	}
}

func TestAnalyzerWordMatchesByLemma(t *testing.T) {
	a := newMorphFixture()
	lemma := NewText("rAma", SLP1)
	out, err := a.WordMatches(NewText("rAmO", SLP1), &lemma, nil)
	if err != nil {
		t.Fatalf("WordMatches: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("WordMatches(rAmO, lemma=rAma) = %d analyses, want 2", len(out))
	}
}

func TestAnalyzerWordMatchesRequiresLemmaOrTagset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("WordMatches with neither lemma nor tagset: expected panic, got none")
		}
	}()
	a := newMorphFixture()
	_, _ = a.WordMatches(NewText("rAmaH", SLP1), nil, nil)
}

func TestAnalyzerWordMatchesNotFound(t *testing.T) {
	a := newMorphFixture()
	_, err := a.WordMatches(NewText("rAmO", SLP1), nil, NewTagset("voc"))
	if err != ErrNotFound {
		t.Errorf("WordMatches(no match) error = %v, want ErrNotFound", err)
	}
}
