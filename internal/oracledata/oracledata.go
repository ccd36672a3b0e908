// Package oracledata embeds a small smoke-test lexicon so the CLI and its
// tests have a working Oracle without requiring a data directory on disk:
// -data is optional for a quick single-word check, and this tiny built-in
// lexicon stands in when it's omitted.
package oracledata

import _ "embed"

//go:embed lexicon.txt
var Lexicon []byte
