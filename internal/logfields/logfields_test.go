package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Archive", KeyArchive, "Sloth", Archive("Sloth")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Page", KeyPage, "index.json", Page("index.json")},
		{"Folder", KeyFolder, "documentation", Folder("documentation")},
		{"Target", KeyTarget, "/out", Target("/out")},
		{"Phase", KeyPhase, "copy_resources", Phase("copy_resources")},
		{"RunID", KeyRunID, "abc", RunID("abc")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestErrorAttr(t *testing.T) {
	a := Error(errors.New("boom"))
	if a.Key != KeyError || a.Value.String() != "boom" {
		t.Fatalf("unexpected error attr: %v", a)
	}
	if Error(nil).Value.String() != "" {
		t.Fatalf("nil error should render empty value")
	}
}
