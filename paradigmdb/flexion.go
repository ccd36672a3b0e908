package paradigmdb

// inflectionTable computes the full inflection table for a lemma. Mirrors
// collatinus's Flexion::forme and flexion.go's inflectionTable.
func inflectionTable(lemma *Lemma) *InflectionTable {
	if lemma == nil || lemma.model == nil {
		return nil
	}
	table := &InflectionTable{Lemma: lemma, Cells: make(map[int][]string)}
	for mn := range lemma.model.Desinences {
		forms := inflectedForms(lemma, mn)
		if len(forms) > 0 {
			table.Cells[mn] = forms
		}
	}
	return table
}

// inflectedForms returns the list of inflected forms for a lemma at morpho
// index n. Mirrors collatinus's Flexion::forme / inflectedForms.
func inflectedForms(lemma *Lemma, morphoIdx int) []string {
	if lemma == nil || lemma.model == nil {
		return nil
	}
	m := lemma.model

	var forms []string

	irregForm, exclusive := lemma.irregAt(morphoIdx)
	if exclusive {
		if irregForm != "" {
			return []string{irregForm}
		}
		return nil
	}
	if irregForm != "" {
		forms = append(forms, irregForm)
	}

	for _, d := range m.DesinencesAt(morphoIdx) {
		for _, rad := range lemma.RadicalsAt(d.RadNum) {
			forms = append(forms, rad.Form+d.Form)
		}
	}

	return unique(forms)
}

// unique returns a deduplicated slice preserving order.
func unique(ss []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
