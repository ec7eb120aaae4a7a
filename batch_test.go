package learning2mdx

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func testRows(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Title: fmt.Sprintf("Page %d", i+1),
			Body:  fmt.Sprintf(`<p><a href="[!--$ssServerRelativeSiteRoot--]Opendocuments/OpenPDFdocuments/CON%d">doc</a></p>`, 100+i),
			Index: i,
		}
	}
	return rows
}

// ---------------------------------------------------------------------------
// TestImportRows - Batch import
// ---------------------------------------------------------------------------

func TestImportRows(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 3, 50} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			t.Parallel()

			rows := testRows(7)
			batch, err := ImportRows(context.Background(), testOptions(), rows, workers)
			if err != nil {
				t.Fatalf("ImportRows() error = %v", err)
			}
			if len(batch.Results) != len(rows) {
				t.Fatalf("len(Results) = %d, want %d", len(batch.Results), len(rows))
			}
			for i, res := range batch.Results {
				if res.Err != nil {
					t.Errorf("row %d error = %v", i, res.Err)
					continue
				}
				if want := fmt.Sprintf("CON123_%d", i+1); res.Document.Stem != want {
					t.Errorf("Results[%d].Stem = %q, want %q", i, res.Document.Stem, want)
				}
			}
			if batch.Failed() != 0 {
				t.Errorf("Failed() = %d, want 0", batch.Failed())
			}

			wantFetch := []string{"CON100", "CON101", "CON102", "CON103", "CON104", "CON105", "CON106"}
			if !reflect.DeepEqual(batch.Assets.Fetch, wantFetch) {
				t.Errorf("Assets.Fetch = %v, want %v", batch.Assets.Fetch, wantFetch)
			}
		})
	}
}

func TestImportRows_BestEffort(t *testing.T) {
	t.Parallel()

	rows := testRows(3)
	rows[1].Body = `<p><a onclick="showhide('missing')">Open</a></p>`

	batch, err := ImportRows(context.Background(), testOptions(), rows, 2)
	if err != nil {
		t.Fatalf("ImportRows() error = %v", err)
	}

	if batch.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", batch.Failed())
	}
	if !errors.Is(batch.Results[1].Err, ErrStructure) {
		t.Errorf("Results[1].Err = %v, want ErrStructure", batch.Results[1].Err)
	}

	want := []ManifestEntry{
		{Name: "Page 1", Link: "CON123_1"},
		{Name: "Page 3", Link: "CON123_3"},
	}
	if got := batch.Manifest(); !reflect.DeepEqual(got, want) {
		t.Errorf("Manifest() = %+v, want %+v", got, want)
	}
}

func TestImportRows_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := ImportRows(ctx, testOptions(), testRows(4), 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ImportRows() error = %v, want context.Canceled", err)
	}
	for i, res := range batch.Results {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("Results[%d].Err = %v, want context.Canceled", i, res.Err)
		}
	}
	if len(batch.Manifest()) != 0 {
		t.Errorf("Manifest() = %v, want empty", batch.Manifest())
	}
}

func TestImportRows_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := ImportRows(context.Background(), Options{Code: "x"}, testRows(1), 1)
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("ImportRows() error = %v, want ErrInvalidCode", err)
	}
}

func TestImportRows_Empty(t *testing.T) {
	t.Parallel()

	batch, err := ImportRows(context.Background(), testOptions(), nil, 4)
	if err != nil {
		t.Fatalf("ImportRows() error = %v", err)
	}
	if len(batch.Results) != 0 || len(batch.Assets.Fetch) != 0 {
		t.Errorf("empty batch = %+v", batch)
	}
}
