package io

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/errors"
)

// Word list formats accepted by [ReadWords].
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatTSV  = "tsv"
	FormatText = "txt"
)

// FormatFromPath infers the word list format from a file extension.
// Unknown extensions are read as plain text.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	}
	return FormatText
}

// ReadWords decodes a word list from r in the given format.
//
// JSON input is an array of objects or of [word, weight] pairs:
//
//	[{"word": "go", "weight": 40, "attributes": {"href": "/go"}}]
//	[["go", 40], ["rust", 30]]
//
// CSV and TSV input has one "word,weight" record per line; a first record
// whose weight is not a number is treated as a header. Plain text has one
// "word weight" pair per line, where the weight is the last field; lines
// with no numeric last field count one occurrence of the whole line, so a
// text with one word per line yields word frequencies. Blank lines and lines
// starting with '#' are ignored.
//
// Items keep their input order; ordering by weight is the caller's choice.
// Every word and weight is validated; the first invalid entry fails the
// whole list with an [errors.ErrCodeInvalidWordList] error.
func ReadWords(r io.Reader, format string) ([]cloud.Item, error) {
	var (
		items []cloud.Item
		err   error
	)
	switch format {
	case FormatJSON:
		items, err = readJSON(r)
	case FormatCSV:
		items, err = readDelimited(r, ',')
	case FormatTSV:
		items, err = readDelimited(r, '\t')
	case FormatText, "":
		items, err = readText(r)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown word list format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := validate(items); err != nil {
		return nil, err
	}
	return items, nil
}

// ImportWords reads the word list file at path, inferring the format from
// its extension.
func ImportWords(path string) ([]cloud.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "word list %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWords(f, FormatFromPath(path))
}

func validate(items []cloud.Item) error {
	for i, it := range items {
		if err := errors.ValidateWord(it.Word); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidWordList, err, "entry %d", i+1)
		}
		if err := errors.ValidateWeight(it.Weight); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidWordList, err, "entry %d (%s)", i+1, it.Word)
		}
	}
	return nil
}

func readJSON(r io.Reader) ([]cloud.Item, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "decode")
	}

	items := make([]cloud.Item, 0, len(raw))
	for i, msg := range raw {
		msg = bytes.TrimSpace(msg)
		if len(msg) > 0 && msg[0] == '[' {
			it, err := decodePair(msg)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "entry %d", i+1)
			}
			items = append(items, it)
			continue
		}
		var it cloud.Item
		if err := json.Unmarshal(msg, &it); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "entry %d", i+1)
		}
		items = append(items, it)
	}
	return items, nil
}

func decodePair(msg json.RawMessage) (cloud.Item, error) {
	var pair []any
	if err := json.Unmarshal(msg, &pair); err != nil {
		return cloud.Item{}, err
	}
	if len(pair) != 2 {
		return cloud.Item{}, fmt.Errorf("want [word, weight], got %d elements", len(pair))
	}
	word, ok := pair[0].(string)
	if !ok {
		return cloud.Item{}, fmt.Errorf("word must be a string")
	}
	weight, ok := pair[1].(float64)
	if !ok {
		return cloud.Item{}, fmt.Errorf("weight must be a number")
	}
	return cloud.Item{Word: word, Weight: weight}, nil
}

func readDelimited(r io.Reader, comma rune) ([]cloud.Item, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "decode")
	}

	items := make([]cloud.Item, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidWordList, "record %d: want word and weight", i+1)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "record %d", i+1)
		}
		items = append(items, cloud.Item{Word: rec[0], Weight: weight})
	}
	return items, nil
}

func readText(r io.Reader) ([]cloud.Item, error) {
	var items []cloud.Item
	counted := make(map[string]int)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.LastIndexAny(line, " \t"); i > 0 {
			if w, err := strconv.ParseFloat(line[i+1:], 64); err == nil {
				items = append(items, cloud.Item{Word: strings.TrimSpace(line[:i]), Weight: w})
				continue
			}
		}
		if idx, ok := counted[line]; ok {
			items[idx].Weight++
			continue
		}
		counted[line] = len(items)
		items = append(items, cloud.Item{Word: line, Weight: 1})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidWordList, err, "read")
	}
	return items, nil
}
