// Command sandhisplit runs the sandhi-reversal splitter, or a morphological
// tag lookup, over a single SLP1 (or auto-detected) input string.
//
// Usage:
//
//	sandhisplit [flags] [data]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sanskrit-lab/sandhisplit"
	"github.com/sanskrit-lab/sandhisplit/internal/oracledata"
	"github.com/sanskrit-lab/sandhisplit/paradigmdb"
)

// tagSetFlag collects repeated or comma/space-separated -tag-set values into
// a single flag.Value.
type tagSetFlag struct {
	tags []string
}

func (t *tagSetFlag) String() string {
	return strings.Join(t.tags, ",")
}

func (t *tagSetFlag) Set(raw string) error {
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
		if field != "" {
			t.tags = append(t.tags, field)
		}
	}
	return nil
}

func main() {
	inputEncoding := flag.String("input-encoding", "auto", "input scheme: devanagari, iast, hk, slp1, or auto")
	base := flag.String("base", "", "filter morphological analysis by lemma")
	var tagSet tagSetFlag
	flag.Var(&tagSet, "tag-set", "filter morphological analysis by required tags (comma- or space-separated)")
	split := flag.Bool("split", false, "run the splitter instead of morphological analysis")
	noSort := flag.Bool("no-sort", false, "skip sorting flattened splits by longest segment")
	debug := flag.Bool("debug", false, "emit trace output of the splitter")
	dataDir := flag.String("data", "", "path to a paradigmdb data directory (defaults to the embedded smoke-test lexicon)")
	flag.Parse()

	data := "adhi"
	if flag.NArg() > 0 {
		data = flag.Arg(0)
	}

	var scheme sandhisplit.Scheme
	if *inputEncoding == "auto" {
		scheme = sandhisplit.SchemeUnknown
	} else {
		s, err := sandhisplit.ParseScheme(*inputEncoding)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		scheme = s
	}

	text := sandhisplit.NewText(data, scheme)

	oracle, err := loadOracle(*dataDir)
	if err != nil {
		log.Fatalf("failed to load oracle: %v", err)
	}

	if *split {
		runSplit(text, oracle, *noSort, *debug)
		return
	}
	runAnalyse(text, oracle, *base, tagSet.tags)
}

func loadOracle(dataDir string) (sandhisplit.Oracle, error) {
	if dataDir == "" {
		return sandhisplit.NewLexiconOracleFromParsed(oracledata.Lexicon)
	}
	db, err := paradigmdb.New(dataDir)
	if err != nil {
		return nil, err
	}
	return paradigmdb.NewOracle(db), nil
}

func runSplit(text sandhisplit.SanskritText, oracle sandhisplit.Oracle, noSort, debug bool) {
	splitter := sandhisplit.NewSplitter(sandhisplit.MustBuildDefaultRules(), oracle)
	if debug {
		splitter.SetDebug(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "debug: "+format+"\n", args...)
		})
	}

	trees := splitter.PossibleSplits(text.SLP1())
	splits := sandhisplit.Flatten(trees)
	if !noSort {
		sandhisplit.SortByLongestSegment(splits)
	}

	if len(splits) == 0 {
		fmt.Println("no segmentation found")
		return
	}
	for _, seq := range splits {
		fmt.Println(strings.Join(seq, " "))
	}
}

func runAnalyse(text sandhisplit.SanskritText, oracle sandhisplit.Oracle, base string, tags []string) {
	analyzer := sandhisplit.NewAnalyzer(oracle, sandhisplit.BuildDefaultTagMap())

	var (
		analyses []sandhisplit.Analysis
		err      error
	)
	if base != "" || len(tags) > 0 {
		var lemmaText *sandhisplit.SanskritText
		if base != "" {
			t := sandhisplit.NewText(base, sandhisplit.SLP1)
			lemmaText = &t
		}
		analyses, err = analyzer.WordMatches(text, lemmaText, sandhisplit.NewTagset(tags...))
	} else {
		analyses, err = analyzer.TagsOf(text)
	}

	if err != nil {
		fmt.Println("no tags")
		return
	}
	for _, a := range analyses {
		var tagList []string
		for t := range a.Tags {
			tagList = append(tagList, t)
		}
		fmt.Printf("%s\t%s\n", a.Lemma, strings.Join(tagList, ","))
	}
}
