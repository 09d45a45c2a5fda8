package scramble

import (
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	in := "1,R U R' U'\n2,F2 B D'\n"
	res, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	if res.Entries[0].ID != "1" || len(res.Entries[0].Alg) != 4 {
		t.Fatalf("entry 0 = %+v", res.Entries[0])
	}
	if res.Entries[1].ID != "2" || len(res.Entries[1].Alg) != 3 {
		t.Fatalf("entry 1 = %+v", res.Entries[1])
	}
	if res.DroppedLines != 0 || res.DroppedTokens != 0 {
		t.Fatalf("unexpected drops: %+v", res)
	}
}

func TestParseSkipsBlankLines(t *testing.T) {
	res, err := Parse(strings.NewReader("\n1,U\n\n2,D\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	if res.Entries[0].Line != 2 || res.Entries[1].Line != 4 {
		t.Fatalf("line numbers = %d, %d", res.Entries[0].Line, res.Entries[1].Line)
	}
}

func TestParseDropsLineWithoutComma(t *testing.T) {
	res, err := Parse(strings.NewReader("no comma here\n1,U\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.DroppedLines != 1 {
		t.Fatalf("DroppedLines = %d, want 1", res.DroppedLines)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
}

func TestParseCountsUnknownTokensWithoutDroppingLine(t *testing.T) {
	res, err := Parse(strings.NewReader("1,U x R y' F\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if len(res.Entries[0].Alg) != 3 {
		t.Fatalf("alg len = %d, want 3 (U, R, F)", len(res.Entries[0].Alg))
	}
	if res.DroppedTokens != 2 {
		t.Fatalf("DroppedTokens = %d, want 2 (x, y')", res.DroppedTokens)
	}
	if res.DroppedLines != 0 {
		t.Fatalf("DroppedLines = %d, want 0", res.DroppedLines)
	}
}

func TestParseDropsLineWhoseScrambleIsEntirelyUnknown(t *testing.T) {
	res, err := Parse(strings.NewReader("1,x y z\n2,U\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.DroppedLines != 1 {
		t.Fatalf("DroppedLines = %d, want 1", res.DroppedLines)
	}
	if len(res.Entries) != 1 || res.Entries[0].ID != "2" {
		t.Fatalf("entries = %+v", res.Entries)
	}
}

func TestParseStripsCarriageReturn(t *testing.T) {
	res, err := Parse(strings.NewReader("1,U R\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(res.Entries) != 1 || len(res.Entries[0].Alg) != 2 {
		t.Fatalf("entries = %+v", res.Entries)
	}
}
