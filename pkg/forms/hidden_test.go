package forms

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHidden(t *testing.T) {
	if got := Hidden(" id ", 42); got.Name != "id" || got.Value != "42" {
		t.Fatalf("Hidden = %+v", got)
	}
}

func TestMergeHiddenFields(t *testing.T) {
	base := map[string]string{"app": "blog", "model": "article"}
	got := MergeHiddenFields(base, Hidden("model", "page"), Hidden("id", "7"), Hidden("", "dropped"))

	want := map[string]string{"app": "blog", "model": "page", "id": "7"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	// The base map is untouched.
	if base["model"] != "article" {
		t.Fatal("merge should not mutate the base map")
	}

	if MergeHiddenFields(nil) != nil {
		t.Fatal("empty merge should stay nil")
	}
}

func TestSortedHiddenFields(t *testing.T) {
	got := SortedHiddenFields(map[string]string{
		"model": "article",
		"app":   "blog",
		"id":    "7",
	})
	want := []HiddenField{
		{Name: "app", Value: "blog"},
		{Name: "id", Value: "7"},
		{Name: "model", Value: "article"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sort mismatch (-want +got):\n%s", diff)
	}

	if SortedHiddenFields(nil) != nil {
		t.Fatal("no fields should yield nil")
	}
}
