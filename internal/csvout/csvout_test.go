package csvout

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/golang/snappy"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func TestWriterPlainCSV(t *testing.T) {
	var buf bytes.Buffer
	w := New(nopWriteCloser{&buf}, false)
	if err := w.WriteHeader([]string{"a", "b"}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.WriteRow("s1", []string{"1", "2"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got := buf.String()
	want := "id,a,b\ns1,1,2\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterCompressed(t *testing.T) {
	var buf bytes.Buffer
	w := New(nopWriteCloser{&buf}, true)
	if err := w.WriteHeader([]string{"x"}); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.WriteRow("1", []string{"9"}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r := snappy.NewReader(bytes.NewReader(buf.Bytes()))
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("snappy decode: %v", err)
	}
	if !strings.HasPrefix(string(raw), "id,x\n1,9\n") {
		t.Fatalf("decoded = %q", raw)
	}
}
