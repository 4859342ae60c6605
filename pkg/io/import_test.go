package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/wordcloud/pkg/cloud"
	"github.com/matzehuels/wordcloud/pkg/errors"
)

func TestReadWords(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		want   []cloud.Item
	}{
		{
			name:   "json objects",
			format: FormatJSON,
			input:  `[{"word": "go", "weight": 40}, {"word": "rust", "weight": 30, "attributes": {"href": "/rust"}}]`,
			want: []cloud.Item{
				{Word: "go", Weight: 40},
				{Word: "rust", Weight: 30, Attributes: map[string]string{"href": "/rust"}},
			},
		},
		{
			name:   "json pairs",
			format: FormatJSON,
			input:  `[["go", 40], ["zig", 12.5]]`,
			want:   []cloud.Item{{Word: "go", Weight: 40}, {Word: "zig", Weight: 12.5}},
		},
		{
			name:   "json mixed",
			format: FormatJSON,
			input:  `[{"word": "go", "weight": 1}, ["c", 2]]`,
			want:   []cloud.Item{{Word: "go", Weight: 1}, {Word: "c", Weight: 2}},
		},
		{
			name:   "csv with header",
			format: FormatCSV,
			input:  "word,weight\ngo,40\n\"hello, world\",3\n# comment\n",
			want:   []cloud.Item{{Word: "go", Weight: 40}, {Word: "hello, world", Weight: 3}},
		},
		{
			name:   "tsv",
			format: FormatTSV,
			input:  "go\t40\nrust\t-2\n",
			want:   []cloud.Item{{Word: "go", Weight: 40}, {Word: "rust", Weight: -2}},
		},
		{
			name:   "text pairs",
			format: FormatText,
			input:  "go 40\nnew york\t12\n\n# ignored\n",
			want:   []cloud.Item{{Word: "go", Weight: 40}, {Word: "new york", Weight: 12}},
		},
		{
			name:   "text frequencies",
			format: FormatText,
			input:  "go\nrust\ngo\ngo\n",
			want:   []cloud.Item{{Word: "go", Weight: 3}, {Word: "rust", Weight: 1}},
		},
		{
			name:   "empty text",
			format: "",
			input:  "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWords(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadWords() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d items %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i].Word != tt.want[i].Word || got[i].Weight != tt.want[i].Weight {
					t.Errorf("item %d = %v, want %v", i, got[i], tt.want[i])
				}
				for k, v := range tt.want[i].Attributes {
					if got[i].Attributes[k] != v {
						t.Errorf("item %d attribute %s = %q, want %q", i, k, got[i].Attributes[k], v)
					}
				}
			}
		})
	}
}

func TestReadWordsErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
	}{
		{"unknown format", "xml", "", errors.ErrCodeInvalidFormat},
		{"malformed json", FormatJSON, `{"word":`, errors.ErrCodeInvalidWordList},
		{"short pair", FormatJSON, `[["go"]]`, errors.ErrCodeInvalidWordList},
		{"pair weight not a number", FormatJSON, `[["go", "big"]]`, errors.ErrCodeInvalidWordList},
		{"empty word", FormatJSON, `[{"word": " ", "weight": 1}]`, errors.ErrCodeInvalidWordList},
		{"control char", FormatTSV, "a\x01b\t3\n", errors.ErrCodeInvalidWordList},
		{"csv missing weight", FormatCSV, "go\n", errors.ErrCodeInvalidWordList},
		{"csv bad weight after header", FormatCSV, "word,weight\ngo,lots\n", errors.ErrCodeInvalidWordList},
		{"infinite weight", FormatText, "go +Inf\n", errors.ErrCodeInvalidWordList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWords(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"words.json":  FormatJSON,
		"WORDS.CSV":   FormatCSV,
		"a/b/c.tsv":   FormatTSV,
		"tags.txt":    FormatText,
		"no-ext":      FormatText,
		"weights.tab": FormatTSV,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestImportWords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.csv")
	if err := os.WriteFile(path, []byte("go,3\nrust,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	items, err := ImportWords(path)
	if err != nil {
		t.Fatalf("ImportWords() error: %v", err)
	}
	if len(items) != 2 || items[1].Word != "rust" {
		t.Errorf("items = %v", items)
	}

	_, err = ImportWords(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want FILE_NOT_FOUND", err)
	}
}
