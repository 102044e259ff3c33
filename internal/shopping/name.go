package shopping

import "strings"

// NormalizeName is the identity key for name-keyed records: lowercased and
// trimmed. Every reader and writer of staples, recent items and pairs goes
// through it.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NameSet is a set of normalized names.
type NameSet map[string]struct{}

// NamesOf collects the normalized names of the given items.
func NamesOf(items []Item) NameSet {
	set := make(NameSet, len(items))
	for _, item := range items {
		set[NormalizeName(item.Name)] = struct{}{}
	}
	return set
}

func (s NameSet) Has(name string) bool {
	_, ok := s[NormalizeName(name)]
	return ok
}

// OrderPair returns two normalized names in lexicographic order so that an
// unordered pair has a single storage key.
func OrderPair(a, b string) (string, string) {
	a, b = NormalizeName(a), NormalizeName(b)
	if b < a {
		return b, a
	}
	return a, b
}
