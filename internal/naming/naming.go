// Package naming allocates display keys for duplicated elements.
//
// Duplicating "logo" yields "logo copy"; duplicating again yields
// "logo copy 2", and so on. The next number is always one past the highest
// copy number already in use for the same root, so gaps are never refilled.
//
// Key concepts:
//   - Copy: the root and copy number parsed from a copy-shaped key
//   - Allocate: the next unique copy key given the taken keys
//   - Batch: a pending stack for allocating several keys in one user action
package naming

import (
	"regexp"
	"strings"
)

const copySuffix = " copy"

// copyPattern matches "<root> copy" and "<root> copy <n>" with n positive.
var copyPattern = regexp.MustCompile(`(?s)^(.*) copy(?: ([1-9][0-9]*))?$`)

// Copy describes a copy-shaped key.
type Copy struct {
	// Root is the key the copies derive from
	Root string

	// Number is the copy number in decimal; the unnumbered form is "1"
	Number string
}

// Parse extracts the root and copy number of a copy-shaped key.
// The second return value is false when key is not copy-shaped.
func Parse(key string) (Copy, bool) {
	m := copyPattern.FindStringSubmatch(key)
	if m == nil {
		return Copy{}, false
	}
	number := m[2]
	if number == "" {
		number = "1"
	}
	return Copy{Root: m[1], Number: number}, true
}

// Root returns the root of key: the captured prefix for copy-shaped keys,
// key itself otherwise.
func Root(key string) string {
	if c, ok := Parse(key); ok {
		return c.Root
	}
	return key
}

// Allocate returns the next copy key for copiedKey that is not present in
// existing or pending.
//
// When no key in existing or pending has the "<root> copy" shape the result is
// "<root> copy"; otherwise it is "<root> copy <max+1>".
func Allocate(copiedKey string, existing, pending []string) string {
	root := Root(copiedKey)

	highest := ""
	scan := func(keys []string) {
		for _, key := range keys {
			// The capture is greedy and anchored, so a key is a copy of root
			// exactly when its captured root equals root.
			c, ok := Parse(key)
			if !ok || c.Root != root {
				continue
			}
			if highest == "" || compareDecimal(c.Number, highest) > 0 {
				highest = c.Number
			}
		}
	}
	scan(existing)
	scan(pending)

	if highest == "" {
		return root + copySuffix
	}
	return root + copySuffix + " " + incrementDecimal(highest)
}

// compareDecimal compares two decimal strings without leading zeros.
func compareDecimal(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// incrementDecimal adds one to a decimal string.
func incrementDecimal(n string) string {
	digits := []byte(n)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return string(digits)
		}
		digits[i] = '0'
	}
	return "1" + string(digits)
}
