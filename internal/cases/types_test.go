package cases

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode_PreservesOrderAndIgnoresUnknownFields(t *testing.T) {
	body := `{"cases":[{"id":3,"title":"c"},{"id":1,"title":"a","unknown":true},{"id":2,"title":"b"}],"total":3}`
	got, err := Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	ids := make([]int64, 0, len(got))
	for _, rec := range got {
		ids = append(ids, rec.ID)
	}
	if diff := cmp.Diff([]int64{3, 1, 2}, ids); diff != "" {
		t.Fatalf("Decode order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_AbsentOrNullFieldIsEmpty(t *testing.T) {
	for _, body := range []string{`{}`, `{"cases":null}`, `{"other":[1,2]}`} {
		got, err := Decode(strings.NewReader(body))
		if err != nil {
			t.Fatalf("Decode(%s) returned error: %v", body, err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("Decode(%s) = %#v, want empty non-nil slice", body, got)
		}
	}
}

func TestDecode_MalformedFails(t *testing.T) {
	for _, body := range []string{``, `[`, `{"cases":"nope"}`, `{"cases":[{"id":"x"}]}`} {
		if _, err := Decode(strings.NewReader(body)); err == nil {
			t.Fatalf("Decode(%q) returned nil error, want error", body)
		}
	}
}

func TestDuplicateIDs(t *testing.T) {
	records := []Record{{ID: 1}, {ID: 2}, {ID: 1}, {ID: 3}, {ID: 1}, {ID: 3}}
	if diff := cmp.Diff([]int64{1, 3}, DuplicateIDs(records)); diff != "" {
		t.Fatalf("DuplicateIDs mismatch (-want +got):\n%s", diff)
	}
	if got := DuplicateIDs([]Record{{ID: 1}, {ID: 2}}); len(got) != 0 {
		t.Fatalf("DuplicateIDs unique batch = %v, want none", got)
	}
}

func TestRecordLabels(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		rule string
		eff  string
	}{
		{"whole", Record{RulesGenerated: 340, EfficiencyIncrease: 40}, "+340", "+40%"},
		{"fraction", Record{RulesGenerated: 0, EfficiencyIncrease: 12.5}, "+0", "+12.5%"},
		{"negative", Record{RulesGenerated: 5, EfficiencyIncrease: -3}, "+5", "-3%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.RulesLabel(); got != tc.rule {
				t.Fatalf("RulesLabel = %q, want %q", got, tc.rule)
			}
			if got := tc.rec.EfficiencyLabel(); got != tc.eff {
				t.Fatalf("EfficiencyLabel = %q, want %q", got, tc.eff)
			}
		})
	}
}

func TestDisplayTitleFallsBackToID(t *testing.T) {
	if got := (Record{ID: 9, Title: "  "}).DisplayTitle(); got != "#9" {
		t.Fatalf("DisplayTitle = %q, want #9", got)
	}
	if got := (Record{ID: 9, Title: " Реестр "}).DisplayTitle(); got != "Реестр" {
		t.Fatalf("DisplayTitle = %q, want Реестр", got)
	}
}
