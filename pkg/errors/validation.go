package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePositive checks that a count argument such as rows or cols is at
// least 1.
func ValidatePositive(name string, v int) error {
	if v <= 0 {
		return Config("the %q argument must be an int greater than 0, received %v (%T)", name, v, v)
	}
	return nil
}

// ValidateSpacing checks that a spacing value lies in [0, 1).
func ValidateSpacing(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v >= 1 {
		return Config("the %q argument must be a float in [0, 1), received %v (%T)", name, v, v)
	}
	return nil
}

// ValidateSpacingRoom checks that n cells separated by spacing keep a
// positive size within total.
func ValidateSpacingRoom(name string, spacing float64, n int, total float64) error {
	if total-spacing*float64(n-1) <= 0 {
		return Config("the %q argument is too large: %v between %d cells leaves no room within %v", name, spacing, n, total)
	}
	return nil
}

// ValidateNonNegative checks that a padding or size fraction is finite and
// not negative.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Config("%s must be a non-negative number, received %v (%T)", name, v, v)
	}
	return nil
}

// ValidateWeights checks a list of relative column widths or row heights:
// it must have exactly n entries, all positive and finite.
func ValidateWeights(name string, ws []float64, n int) error {
	if len(ws) != n {
		return Config("the %q argument must be a list of numbers of length %d, received %v (%T)", name, n, ws, ws)
	}
	for _, w := range ws {
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			return Config("the %q argument must contain positive numbers, received %v (%T)", name, ws, ws)
		}
	}
	return nil
}

// gridFileExts lists the grid description formats understood by the CLI.
var gridFileExts = map[string]bool{".toml": true, ".yaml": true, ".yml": true}

// ValidateGridPath validates a grid description file path.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml, .yaml or .yml
func ValidateGridPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "grid file path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !gridFileExts[ext] {
		return New(ErrCodeInvalidPath, "unsupported grid file extension %q (must be .toml, .yaml or .yml)", ext)
	}

	return nil
}
