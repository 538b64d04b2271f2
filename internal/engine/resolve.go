package engine

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/danieljhkim/elemlist/internal/element"
)

// minIDPrefix is the shortest id prefix accepted as a reference.
const minIDPrefix = 4

// resolve finds the element ref points at: an exact id, then a unique key,
// then a unique id prefix.
func resolve(list []element.Element, ref string) (element.Element, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return element.Element{}, fmt.Errorf("%w: empty element reference", ErrValidation)
	}

	if i := element.IndexOf(list, ref); i >= 0 {
		return list[i], nil
	}

	var byKey []element.Element
	for _, e := range list {
		if e.Key == ref {
			byKey = append(byKey, e)
		}
	}
	switch len(byKey) {
	case 1:
		return byKey[0], nil
	case 0:
	default:
		return element.Element{}, fmt.Errorf("%w: key %q matches %d elements, use an id", ErrValidation, ref, len(byKey))
	}

	if len(ref) >= minIDPrefix {
		var byPrefix []element.Element
		for _, e := range list {
			if strings.HasPrefix(e.ID, ref) {
				byPrefix = append(byPrefix, e)
			}
		}
		switch len(byPrefix) {
		case 1:
			return byPrefix[0], nil
		case 0:
		default:
			return element.Element{}, fmt.Errorf("%w: id prefix %q matches %d elements", ErrValidation, ref, len(byPrefix))
		}
	}

	if s := suggest(list, ref); s != "" {
		return element.Element{}, fmt.Errorf("%w: element %q (did you mean %q?)", ErrNotFound, ref, s)
	}
	return element.Element{}, fmt.Errorf("%w: element %q", ErrNotFound, ref)
}

// resolveAll resolves every ref, rejecting repeats.
func resolveAll(list []element.Element, refs []string) ([]element.Element, error) {
	out := make([]element.Element, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		e, err := resolve(list, ref)
		if err != nil {
			return nil, err
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: element %q given more than once", ErrValidation, e.Key)
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out, nil
}

// suggest returns the key closest to ref, or "" when nothing is close.
func suggest(list []element.Element, ref string) string {
	best := ""
	bestDist := len(ref)/3 + 2
	for _, e := range list {
		d := levenshtein.ComputeDistance(strings.ToLower(ref), strings.ToLower(e.Key))
		if d < bestDist {
			best, bestDist = e.Key, d
		}
	}
	return best
}
