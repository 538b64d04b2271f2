package element

// IndexOf returns the position of the element with the given id, or -1.
func IndexOf(list []Element, id string) int {
	if id == "" {
		return -1
	}
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether list holds an element with the given id.
func Contains(list []Element, id string) bool {
	return IndexOf(list, id) >= 0
}

// IDs returns the ids of list in order.
func IDs(list []Element) []string {
	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	return ids
}

// Keys returns the keys of list in order.
func Keys(list []Element) []string {
	keys := make([]string, len(list))
	for i, e := range list {
		keys[i] = e.Key
	}
	return keys
}

// Clone returns a shallow copy of list. A nil list stays nil.
func Clone(list []Element) []Element {
	if list == nil {
		return nil
	}
	return append([]Element(nil), list...)
}

// SameOrder reports whether a and b hold the same ids in the same order.
func SameOrder(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// Without returns the elements of list whose ids are not in drop.
func Without(list []Element, drop map[string]bool) []Element {
	out := make([]Element, 0, len(list))
	for _, e := range list {
		if !drop[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// IDSet returns the ids of list as a set.
func IDSet(list []Element) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, e := range list {
		set[e.ID] = true
	}
	return set
}
