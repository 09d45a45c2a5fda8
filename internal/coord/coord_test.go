package coord

import "testing"

func TestBijectionEdges2(t *testing.T) {
	p := Params{N: 2, C: 2, Pn: 12}
	size := p.Size()
	if size != 24*22 {
		t.Fatalf("size = %d, want %d", size, 24*22)
	}
	for i := 0; i < size; i++ {
		a := Decode(i, p)
		// Decode()'s elements are *18 row offsets; undo that to re-encode.
		raw := make([]int, len(a))
		for j, v := range a {
			raw[j] = v / 18
		}
		got := Encode(raw, p)
		if got != i {
			t.Fatalf("encode(decode(%d)) = %d", i, got)
		}
	}
}

func TestBijectionCorners2(t *testing.T) {
	p := Params{N: 2, C: 3, Pn: 8}
	size := p.Size()
	if size != 56*9 {
		t.Fatalf("size = %d, want %d", size, 56*9)
	}
	for i := 0; i < size; i++ {
		a := Decode(i, p)
		raw := make([]int, len(a))
		for j, v := range a {
			raw[j] = v / 18
		}
		if got := Encode(raw, p); got != i {
			t.Fatalf("encode(decode(%d)) = %d", i, got)
		}
	}
}

func TestDecodeRowOffsetShape(t *testing.T) {
	p := Params{N: 1, C: 2, Pn: 12}
	for i := 0; i < p.Size(); i++ {
		a := Decode(i, p)
		if len(a) != 1 {
			t.Fatalf("expected 1 element")
		}
		if a[0]%18 != 0 {
			t.Fatalf("decode output %d is not an 18-multiple row offset", a[0])
		}
	}
}
