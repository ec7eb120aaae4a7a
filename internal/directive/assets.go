package directive

import "sort"

// AssetSet is a set of legacy content identifiers.
// The zero value is an empty set ready to use.
type AssetSet struct {
	items map[string]struct{}
}

// Add records id in the set. Empty identifiers are ignored.
func (s *AssetSet) Add(id string) {
	if id == "" {
		return
	}
	if s.items == nil {
		s.items = make(map[string]struct{})
	}
	s.items[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s *AssetSet) Has(id string) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of identifiers in the set.
func (s *AssetSet) Len() int {
	return len(s.items)
}

// Sorted returns the identifiers in lexical order.
func (s *AssetSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for id := range s.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Merge adds every identifier of other to s.
func (s *AssetSet) Merge(other *AssetSet) {
	if other == nil {
		return
	}
	for id := range other.items {
		s.Add(id)
	}
}

// Assets groups the asset identifiers collected while resolving directives.
// Unknown is always a subset of Fetch.
type Assets struct {
	Fetch   AssetSet // referenced assets to download from the legacy system
	Unknown AssetSet // referenced assets whose file type could not be determined
}

// Merge unions other into a. Used to aggregate the sets of several
// converters after a parallel batch run.
func (a *Assets) Merge(other *Assets) {
	if other == nil {
		return
	}
	a.Fetch.Merge(&other.Fetch)
	a.Unknown.Merge(&other.Unknown)
}

func (a *Assets) addFetch(id string) {
	a.Fetch.Add(id)
}

func (a *Assets) addUnknown(id string) {
	a.Fetch.Add(id)
	a.Unknown.Add(id)
}
