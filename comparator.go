package rxkit

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

type SortMode int

// SortCaseInsensitiveAsc orders values by their case folded text, ascending.
// It is the only supported mode.
const SortCaseInsensitiveAsc SortMode = 1

type StringComparator struct {
	mode SortMode
}

func NewStringComparator(mode SortMode) (*StringComparator, error) {
	if mode != SortCaseInsensitiveAsc {
		return nil, &UnsupportedModeError{Mode: mode}
	}

	return &StringComparator{mode: mode}, nil
}

// Compare compares the textual representation of a and b.
// It returns a negative number, zero or a positive number like strings.Compare.
func (c *StringComparator) Compare(a, b any) int {
	// cases.Caser keeps state, use a new one per call
	fold := cases.Fold()
	return strings.Compare(fold.String(toText(a)), fold.String(toText(b)))
}

// Sort sorts values in place, keeping the order of equal values
func (c *StringComparator) Sort(values []string) {
	slices.SortStableFunc(values, func(a, b string) int {
		return c.Compare(a, b)
	})
}

func toText(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	}

	return fmt.Sprint(v)
}
