package format

import (
	"errors"
	"testing"
)

// putKey writes a NUL-terminated UTF-16LE key at off and returns the offset
// just past the terminator.
func putKey(b []byte, off int, key string) int {
	for _, r := range key {
		PutU16(b, off, uint16(r))
		off += 2
	}
	PutU16(b, off, 0)
	return off + 2
}

func TestDecodeRecord(t *testing.T) {
	b := make([]byte, 64)
	PutU16(b, 0, 40)
	PutU16(b, 2, 0)
	PutU16(b, 4, ValueText)
	end := putKey(b, 6, "040904B0")

	h, valueOff, err := DecodeRecord(b, 0)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if h.Key != "040904B0" {
		t.Fatalf("key = %q", h.Key)
	}
	if !h.IsText || h.ValueLength != 0 || h.Length != 40 {
		t.Fatalf("unexpected header: %+v", h)
	}
	if valueOff != Align4(end) {
		t.Fatalf("valueOff = %d, want %d", valueOff, Align4(end))
	}
}

func TestDecodeRecordTruncated(t *testing.T) {
	b := make([]byte, 32)
	PutU16(b, 0, 200) // declares more than the buffer holds
	PutU16(b, 4, ValueBinary)
	putKey(b, 6, "X")

	if _, _, err := DecodeRecord(b, 0); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}

	if _, _, err := DecodeRecord(b, 30); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for short header, got %v", err)
	}
}

func TestDecodeRecordBadLength(t *testing.T) {
	b := make([]byte, 32)
	PutU16(b, 0, 4) // shorter than the header itself
	putKey(b, 6, "X")

	if _, _, err := DecodeRecord(b, 0); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeRecordMissingTerminator(t *testing.T) {
	b := make([]byte, 16)
	PutU16(b, 0, 16)
	for off := 6; off < 16; off += 2 {
		PutU16(b, off, 'A')
	}

	if _, _, err := DecodeRecord(b, 0); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeRecordValueOverrun(t *testing.T) {
	b := make([]byte, 32)
	PutU16(b, 0, 12)
	PutU16(b, 2, 100) // value larger than the record
	PutU16(b, 4, ValueBinary)
	putKey(b, 6, "X")

	if _, _, err := DecodeRecord(b, 0); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat, got %v", err)
	}
}

func TestEncodeRecordRoundTrip(t *testing.T) {
	w := NewWriter()
	h := RecordHeader{ValueLength: 7, IsText: true, Key: "ProductName"}
	lenPos, err := EncodeRecord(w, h)
	if err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	if w.Len()%DWORDAlignment != 0 {
		t.Fatalf("header not DWORD aligned: %d", w.Len())
	}
	w.Append(make([]byte, 14))
	w.PatchU16(lenPos, uint16(w.Len()))

	got, valueOff, err := DecodeRecord(w.Bytes(), 0)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if got.Key != h.Key || got.ValueLength != h.ValueLength || !got.IsText {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.ValueBytes() != 14 {
		t.Fatalf("ValueBytes = %d, want 14", got.ValueBytes())
	}
	if valueOff+14 != int(got.Length) {
		t.Fatalf("value does not end at record end: %d + 14 != %d", valueOff, got.Length)
	}
}

func TestAlign4(t *testing.T) {
	cases := [][2]int{{0, 0}, {1, 4}, {3, 4}, {4, 4}, {5, 8}, {38, 40}}
	for _, c := range cases {
		if got := Align4(c[0]); got != c[1] {
			t.Fatalf("Align4(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}
