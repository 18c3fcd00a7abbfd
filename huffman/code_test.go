package huffman

import (
	"testing"
)

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []uint32{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	if expect := MakeCode(4, 0x0d); hc != expect {
		t.Errorf("expected %s, got %s", expect, hc)
	}
	if expect := MakeCode(4, 0x0b); hc.Reversed() != expect {
		t.Errorf("expected %s, got %s", expect, hc.Reversed())
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}
	testData := [...]testRow{
		{MakeCode(0, 0), `""`},
		{MakeCode(1, 1), `"1"`},
		{MakeCode(5, 3), `"00011"`},
	}
	for _, row := range testData {
		if actual := row.hc.String(); actual != row.expect {
			t.Errorf("expected %s, got %s", row.expect, actual)
		}
	}
}

func TestSymbolLabel(t *testing.T) {
	type testRow struct {
		symbol Symbol
		expect string
	}
	testData := [...]testRow{
		{'a', "'a'"},
		{' ', "' '"},
		{'\n', "012"},
		{0xff, "377"},
		{EOF, "EOF"},
	}
	for _, row := range testData {
		if actual := SymbolLabel(row.symbol); actual != row.expect {
			t.Errorf("SymbolLabel(%d): expected %s, got %s", row.symbol, row.expect, actual)
		}
	}
}

func TestCode_Compare(t *testing.T) {
	type testRow struct {
		a, b   Code
		expect int
	}
	testData := [...]testRow{
		{MakeCode(1, 1), MakeCode(2, 0), -1},
		{MakeCode(3, 5), MakeCode(3, 2), 1},
		{MakeCode(4, 7), MakeCode(4, 7), 0},
	}
	for _, row := range testData {
		if actual := row.a.Compare(row.b); actual != row.expect {
			t.Errorf("%s.Compare(%s) = %d, expected %d", row.a, row.b, actual, row.expect)
		}
	}
}
