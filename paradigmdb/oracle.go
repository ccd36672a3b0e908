package paradigmdb

import "github.com/sanskrit-lab/sandhisplit"

// Oracle adapts a generative DB into a sandhisplit.Oracle backed by a fully
// expanded inflected-form index, the paradigm-database alternative to
// LexiconOracle's flat surface-form file.
type Oracle struct {
	db *DB
}

// NewOracle wraps db as a sandhisplit.Oracle.
func NewOracle(db *DB) *Oracle {
	return &Oracle{db: db}
}

// IsWord reports whether s is any generated surface form in the database.
func (o *Oracle) IsWord(s string) bool {
	_, ok := o.db.forms[s]
	return ok
}

// Analyse returns a morphological analysis for every lemma/morpho-cell pair
// that generates s.
func (o *Oracle) Analyse(s string) ([]sandhisplit.Analysis, bool) {
	entries, ok := o.db.forms[s]
	if !ok {
		return nil, false
	}
	analyses := make([]sandhisplit.Analysis, 0, len(entries))
	for _, e := range entries {
		desc, _ := o.db.MorphoDescription(e.morphoNum)
		tags := sandhisplit.NewTagset(desc, string(e.lemma.POS))
		analyses = append(analyses, sandhisplit.Analysis{Lemma: e.lemma.Form, Tags: tags})
	}
	return analyses, true
}

var _ sandhisplit.Oracle = (*Oracle)(nil)
