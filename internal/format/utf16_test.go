package format

import (
	"errors"
	"testing"
)

func TestUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"", "CompanyName", "abcd_äöüß", "日本語", "emoji 😀"} {
		b, err := EncodeUTF16(s)
		if err != nil {
			t.Fatalf("EncodeUTF16(%q): %v", s, err)
		}
		got, err := DecodeUTF16(b)
		if err != nil {
			t.Fatalf("DecodeUTF16(%q): %v", s, err)
		}
		if got != s {
			t.Fatalf("round trip: got %q, want %q", got, s)
		}
	}
}

func TestReadUTF16Z(t *testing.T) {
	b := make([]byte, 32)
	end := putKey(b, 4, "Widget")

	s, next, err := ReadUTF16Z(b, 4, len(b))
	if err != nil {
		t.Fatalf("ReadUTF16Z: %v", err)
	}
	if s != "Widget" || next != end {
		t.Fatalf("got %q next=%d, want %q next=%d", s, next, "Widget", end)
	}
}

func TestReadUTF16ZUnterminated(t *testing.T) {
	b := make([]byte, 8)
	for off := 0; off < len(b); off += 2 {
		PutU16(b, off, 'Z')
	}
	if _, _, err := ReadUTF16Z(b, 0, len(b)); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestWriterReservePatch(t *testing.T) {
	w := NewWriter()
	pos := w.ReserveU16()
	w.PutU16(0xBEEF)
	w.Append([]byte{1, 2, 3})
	w.Pad4()
	w.PatchU16(pos, uint16(w.Len()))

	if w.Len()%DWORDAlignment != 0 {
		t.Fatalf("length %d not DWORD aligned", w.Len())
	}
	if got := ReadU16(w.Bytes(), pos); got != uint16(w.Len()) {
		t.Fatalf("patched value = %d, want %d", got, w.Len())
	}
	if got := ReadU16(w.Bytes(), 2); got != 0xBEEF {
		t.Fatalf("payload overwritten: %#x", got)
	}
}
