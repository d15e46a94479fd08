package loader

import (
	"strings"
	"testing"
)

func TestReadAll_GloVe(t *testing.T) {
	input := "king 1.0 0.0\nqueen 0.9 0.436\n\nman 0.0 1.0\n"

	rows, err := ReadAll(strings.NewReader(input), Options{Format: FormatGloVe})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0].Token != "king" || rows[0].Vector[0] != 1 || rows[0].Vector[1] != 0 {
		t.Fatalf("rows[0] = %+v, want king (1, 0)", rows[0])
	}
	if rows[1].Token != "queen" {
		t.Fatalf("rows[1].Token = %q, want queen", rows[1].Token)
	}
}

func TestReadAll_CSVWithHeader(t *testing.T) {
	input := "word,d1,d2\nking,1.0,0.0\nqueen,0.9,0.436\n"

	rows, err := ReadAll(strings.NewReader(input), Options{Format: FormatCSV})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (header dropped)", len(rows))
	}
	if rows[0].Token != "king" {
		t.Fatalf("rows[0].Token = %q, want king", rows[0].Token)
	}
}

func TestReadAll_AutoDetect(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "glove", input: "king 1.0 0.0\n"},
		{name: "csv", input: "king,1.0,0.0\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := ReadAll(strings.NewReader(tc.input), Options{})
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if len(rows) != 1 || rows[0].Token != "king" || len(rows[0].Vector) != 2 {
				t.Fatalf("rows = %+v, want one king row with 2 components", rows)
			}
		})
	}
}

func TestReadAll_InvalidNumber(t *testing.T) {
	input := "king 1.0 0.0\nqueen 0.9 oops\n"

	_, err := ReadAll(strings.NewReader(input), Options{Format: FormatGloVe})
	if err == nil {
		t.Fatalf("expected parse error for non-numeric component")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("error %q does not name the offending line", err)
	}
}

func TestReadAll_TokenOnlyLine(t *testing.T) {
	if _, err := ReadAll(strings.NewReader("king\n"), Options{Format: FormatGloVe}); err == nil {
		t.Fatalf("expected error for line with no vector components")
	}
}

func TestReadAll_Progress(t *testing.T) {
	input := "a 1.0\nb 2.0\nc 3.0\n"

	var calls int
	_, err := ReadAll(strings.NewReader(input), Options{
		Format:   FormatGloVe,
		Progress: func(rows int) { calls = rows },
	})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if calls != 3 {
		t.Fatalf("progress saw %d rows, want 3", calls)
	}
}
