package label

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseValidRecords(t *testing.T) {
	text := "0 0.5 0.5 0.2 0.2\n3 0.1 0.2 0.05 0.05"

	set, warnings := Parse(text)

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	want := Set{
		{Class: 0, CX: 0.5, CY: 0.5, W: 0.2, H: 0.2},
		{Class: 3, CX: 0.1, CY: 0.2, W: 0.05, H: 0.05},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Errorf("Parsed set mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	text := "# comment\n\n   \n0 0.5 0.5 0.2 0.2\n  # indented comment"

	set, warnings := Parse(text)

	if len(set) != 1 {
		t.Errorf("Expected 1 record, got %d", len(set))
	}
	if len(warnings) != 0 {
		t.Errorf("Comments and blanks must not produce warnings, got %v", warnings)
	}
}

func TestParseShortLineProducesWarning(t *testing.T) {
	set, warnings := Parse("0 0.1 0.1")

	if len(set) != 0 {
		t.Errorf("Expected no records, got %d", len(set))
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Line != 1 {
		t.Errorf("Expected warning on line 1, got %d", warnings[0].Line)
	}
}

func TestParseInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"non-integer class", "abc 0.5 0.5 0.2 0.2"},
		{"negative class", "-1 0.5 0.5 0.2 0.2"},
		{"non-numeric geometry", "0 0.5 foo 0.2 0.2"},
		{"nan geometry", "0 0.5 NaN 0.2 0.2"},
		{"inf geometry", "0 0.5 0.5 +Inf 0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, warnings := Parse(tt.line)
			if len(set) != 0 {
				t.Errorf("Expected line to be rejected, got %d records", len(set))
			}
			if len(warnings) != 1 {
				t.Errorf("Expected 1 warning, got %d", len(warnings))
			}
		})
	}
}

func TestParseIgnoresExtraTokens(t *testing.T) {
	withExtra, w1 := Parse("2 0.3 0.3 0.1 0.1 extra garbage")
	plain, w2 := Parse("2 0.3 0.3 0.1 0.1")

	if len(w1) != 0 || len(w2) != 0 {
		t.Errorf("Expected no warnings, got %v and %v", w1, w2)
	}
	if diff := cmp.Diff(plain, withExtra); diff != "" {
		t.Errorf("Trailing tokens must be ignored (-plain +extra):\n%s", diff)
	}
}

func TestParseContinuesAfterMalformedLine(t *testing.T) {
	text := "0 0.5 0.5 0.2 0.2\nbad line here\n1 0.2 0.2 0.1 0.1"

	set, warnings := Parse(text)

	if len(set) != 2 {
		t.Errorf("Expected 2 valid records, got %d", len(set))
	}
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Line != 2 {
		t.Errorf("Expected warning on line 2, got %d", warnings[0].Line)
	}

	// Order of valid records is preserved.
	if set[0].Class != 0 || set[1].Class != 1 {
		t.Errorf("Record order not preserved: %v", set)
	}
}

func TestParseEmptyInput(t *testing.T) {
	set, warnings := Parse("")

	if len(set) != 0 || len(warnings) != 0 {
		t.Errorf("Empty input should yield nothing, got %d records %d warnings",
			len(set), len(warnings))
	}
}
