package sandhisplit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/coregx/ahocorasick"
)

// Tagset is a set of short grammatical-feature tag codes.
type Tagset map[string]struct{}

// NewTagset builds a Tagset from a slice of tag codes.
func NewTagset(tags ...string) Tagset {
	ts := make(Tagset, len(tags))
	for _, t := range tags {
		ts[t] = struct{}{}
	}
	return ts
}

// Superset reports whether ts contains every tag in other.
func (ts Tagset) Superset(other Tagset) bool {
	for t := range other {
		if _, ok := ts[t]; !ok {
			return false
		}
	}
	return true
}

// Analysis is a single morphological analysis for a word form: a lemma
// plus the tagset describing the inflected form.
type Analysis struct {
	Lemma string
	Tags  Tagset
}

// Oracle is the lexical oracle contract: a fast membership predicate the
// splitter depends on, plus a morphological-analysis lookup the facade
// depends on. Implementations SHOULD be side-effect free and
// deterministic.
type Oracle interface {
	// IsWord reports whether s is a recognized Sanskrit word, in SLP1.
	IsWord(s string) bool
	// Analyse returns all morphological analyses of s (SLP1), or ok==false
	// if the oracle has no analysis for it.
	Analyse(s string) (analyses []Analysis, ok bool)
}

// CachingOracle wraps an Oracle and memoizes both operations, mirroring
// collatinus.go's map-of-maps caches but guarded for concurrent lookup:
// if an instance is shared across threads, the caches need mutual
// exclusion or a concurrent map.
type CachingOracle struct {
	inner Oracle

	wordCache sync.Map // string -> bool
	tagCache  sync.Map // string -> cachedAnalysis
}

type cachedAnalysis struct {
	analyses []Analysis
	ok       bool
}

// NewCachingOracle wraps inner with a tag/word cache.
func NewCachingOracle(inner Oracle) *CachingOracle {
	return &CachingOracle{inner: inner}
}

// IsWord answers from the cache when possible, else delegates and caches.
func (c *CachingOracle) IsWord(s string) bool {
	if v, ok := c.wordCache.Load(s); ok {
		return v.(bool)
	}
	r := c.inner.IsWord(s)
	c.wordCache.Store(s, r)
	return r
}

// Analyse answers from the cache when possible, else delegates and caches.
func (c *CachingOracle) Analyse(s string) ([]Analysis, bool) {
	if v, ok := c.tagCache.Load(s); ok {
		ca := v.(cachedAnalysis)
		return ca.analyses, ca.ok
	}
	analyses, ok := c.inner.Analyse(s)
	c.tagCache.Store(s, cachedAnalysis{analyses: analyses, ok: ok})
	return analyses, ok
}

// LexiconOracle is the bundled reference Oracle implementation: an
// in-memory dictionary loaded from a flat data file, in the style of
// colon-delimited ".la" lexicon files read line by line. Entries have
// the form:
//
//	surfaceForm:lemma:tag,tag,tag
//
// One surface form may appear on multiple lines (multiple analyses); blank
// lines and lines starting with "!" are comments.
type LexiconOracle struct {
	analyses map[string][]Analysis
	matcher  *ahocorasick.Matcher
}

// LoadLexiconOracle reads a lexicon data file from path and builds a
// LexiconOracle, including an Aho-Corasick matcher over every known surface
// form as a Bloom-filter-like quick check for IsWord's fast path:
// ContainsString is a cheap over-approximation (a negative answer is
// certain; a positive answer still needs the exact map lookup that
// follows it).
func LoadLexiconOracle(path string) (*LexiconOracle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	lo, err := parseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("read lexicon %s: %w", path, err)
	}
	return lo, nil
}

// NewLexiconOracleFromParsed builds a LexiconOracle from an in-memory
// lexicon file, in the format LoadLexiconOracle reads from disk — used to
// serve the CLI's embedded smoke-test lexicon (internal/oracledata) without
// touching the filesystem.
func NewLexiconOracleFromParsed(data []byte) (*LexiconOracle, error) {
	lo, err := parseLexicon(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read embedded lexicon: %w", err)
	}
	return lo, nil
}

func parseLexicon(r io.Reader) (*LexiconOracle, error) {
	lo := &LexiconOracle{analyses: make(map[string][]Analysis)}
	var forms []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 2 {
			continue
		}
		form := parts[0]
		lemma := parts[1]
		var tags []string
		if len(parts) == 3 && parts[2] != "" {
			tags = strings.Split(parts[2], ",")
		}
		lo.analyses[form] = append(lo.analyses[form], Analysis{Lemma: lemma, Tags: NewTagset(tags...)})
		forms = append(forms, form)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	lo.matcher = ahocorasick.NewStringMatcher(forms)
	return lo, nil
}

// NewLexiconOracleFromWords builds a LexiconOracle directly from an
// in-memory word->lemma,tags map, for tests and small embedded lexicons
// that need a synthetic oracle without a data file on disk.
func NewLexiconOracleFromWords(words map[string][]Analysis) *LexiconOracle {
	lo := &LexiconOracle{analyses: make(map[string][]Analysis, len(words))}
	forms := make([]string, 0, len(words))
	for form, analyses := range words {
		lo.analyses[form] = analyses
		forms = append(forms, form)
	}
	lo.matcher = ahocorasick.NewStringMatcher(forms)
	return lo
}

// IsWord reports whether s is a recognized word: a fast Aho-Corasick
// containment pre-check prunes clear negatives before the exact lookup.
func (lo *LexiconOracle) IsWord(s string) bool {
	if lo.matcher != nil && !lo.matcher.ContainsString(s) {
		return false
	}
	_, ok := lo.analyses[s]
	return ok
}

// Analyse returns all analyses recorded for s, or ok==false if unknown.
func (lo *LexiconOracle) Analyse(s string) ([]Analysis, bool) {
	a, ok := lo.analyses[s]
	return a, ok
}
