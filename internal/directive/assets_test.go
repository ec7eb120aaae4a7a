package directive

import (
	"reflect"
	"sync"
	"testing"
)

func TestAssetSet(t *testing.T) {
	t.Parallel()

	var s AssetSet
	if s.Len() != 0 {
		t.Fatalf("zero value Len() = %d, want 0", s.Len())
	}

	s.Add("B")
	s.Add("A")
	s.Add("B")
	s.Add("")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has("A") || s.Has("C") {
		t.Error("Has() returned wrong membership")
	}
	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Sorted() = %v, want [A B]", got)
	}
}

func TestAssetsMerge(t *testing.T) {
	t.Parallel()

	var total Assets
	parts := make([]*Assets, 4)
	var wg sync.WaitGroup
	for i := range parts {
		parts[i] = &Assets{}
		wg.Add(1)
		go func(a *Assets, n int) {
			defer wg.Done()
			a.addFetch("SHARED")
			if n%2 == 0 {
				a.addUnknown("ODD" + string(rune('A'+n)))
			}
		}(parts[i], i)
	}
	wg.Wait()

	for _, p := range parts {
		total.Merge(p)
	}
	total.Merge(nil)

	if got := total.Fetch.Sorted(); !reflect.DeepEqual(got, []string{"ODDA", "ODDC", "SHARED"}) {
		t.Errorf("Fetch = %v", got)
	}
	if got := total.Unknown.Sorted(); !reflect.DeepEqual(got, []string{"ODDA", "ODDC"}) {
		t.Errorf("Unknown = %v", got)
	}
	for _, id := range total.Unknown.Sorted() {
		if !total.Fetch.Has(id) {
			t.Errorf("Unknown id %q missing from Fetch", id)
		}
	}
}

func TestDefaultRedirectsIsCopy(t *testing.T) {
	t.Parallel()

	a := DefaultRedirects()
	a["CON123123"] = "changed"

	if DefaultRedirects()["CON123123"] == "changed" {
		t.Error("DefaultRedirects() returned shared map")
	}
}
