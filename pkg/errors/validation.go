package errors

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWordLength is the longest word accepted in a word list, in runes.
const MaxWordLength = 256

// ValidateWord validates a single word-list entry.
//
// Words are drawn verbatim, so the rules only reject what cannot be
// rendered sensibly:
//   - No empty or whitespace-only words
//   - No control characters (tabs and newlines included)
//   - Maximum length of MaxWordLength runes
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return New(ErrCodeInvalidWordList, "word cannot be empty")
	}

	if utf8.RuneCountInString(word) > MaxWordLength {
		return New(ErrCodeInvalidWordList, "word too long (max %d characters)", MaxWordLength)
	}

	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWordList, "word %q contains control characters", word)
		}
	}

	return nil
}

// ValidateWeight rejects weights that cannot be mapped to a font size.
// Zero and negative weights are allowed; they are skipped at placement time.
func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return New(ErrCodeInvalidWordList, "weight must be a finite number, got %v", weight)
	}
	return nil
}

// ValidatePath validates a file path referenced from a config file for safety.
// Such paths are resolved against the config file's directory.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateOutputPath validates a path the CLI writes an artifact to.
// Unlike ValidatePath, absolute paths are allowed.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}
