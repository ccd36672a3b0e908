package paradigmdb

import "testing"

func TestOracleIsWord(t *testing.T) {
	db, err := New(testDataDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	o := NewOracle(db)

	if !o.IsWord("rAmaH") {
		t.Error("IsWord(rAmaH) = false, want true")
	}
	if o.IsWord("ajitaH") {
		t.Error("IsWord(ajitaH) = true, want false")
	}
}

func TestOracleAnalyse(t *testing.T) {
	db, _ := New(testDataDir)
	o := NewOracle(db)

	analyses, ok := o.Analyse("rAmaH")
	if !ok || len(analyses) == 0 {
		t.Fatalf("Analyse(rAmaH) = %v, %v; want at least one analysis", analyses, ok)
	}
	if analyses[0].Lemma != "rAma" {
		t.Errorf("Analyse(rAmaH)[0].Lemma = %q, want rAma", analyses[0].Lemma)
	}

	if _, ok := o.Analyse("ajitaH"); ok {
		t.Error("Analyse(ajitaH): expected ok=false")
	}
}
