// Package io reads and writes word lists and placement records.
//
// # Word Lists
//
// A word list is an ordered sequence of [cloud.Item] values. Four input
// formats are accepted:
//
//	words.json   [{"word": "go", "weight": 40}, ["rust", 30]]
//	words.csv    word,weight
//	             go,40
//	words.tsv    go<TAB>40
//	words.txt    go 40
//
// Plain text lines without a numeric weight are counted, so any text with
// one word per line produces a frequency list:
//
//	items, err := io.ImportWords("tags.txt")
//
// Use [ReadWords] with an explicit format to read from any io.Reader, such
// as standard input. Entries are validated with [errors.ValidateWord] and
// [errors.ValidateWeight]; failures carry [errors.ErrCodeInvalidWordList].
//
// # Export
//
// [WriteJSON] and [ExportJSON] write word lists in the JSON object form.
// [WritePlacements] writes the placements of a finished run, including
// each word's pixel rectangle, for hit testing in other tools;
// [ReadPlacements] reads them back. For a richer document with run
// statistics, see the JSON renderer in [cloud/sink].
//
// [cloud/sink]: github.com/matzehuels/wordcloud/pkg/cloud/sink
package io
