package format

import (
	"fmt"

	"github.com/joshuapare/verskit/internal/buf"
)

// RecordHeader models the envelope shared by every node in the version
// resource tree. Length covers the whole record including the header, value,
// padding between value and children, and all child records.
type RecordHeader struct {
	Length      uint16
	ValueLength uint16
	IsText      bool
	Key         string
}

// ValueBytes returns the size of the value payload in bytes. For text values
// wValueLength counts UTF-16 code units (including the terminator); for
// binary values it counts bytes.
func (h RecordHeader) ValueBytes() int {
	if h.IsText {
		return int(h.ValueLength) * 2
	}
	return int(h.ValueLength)
}

// End returns the offset one past the record that starts at off.
func (h RecordHeader) End(off int) int {
	return off + int(h.Length)
}

// DecodeRecord reads a record header at off and returns it along with the
// DWORD-aligned offset of the value payload. The declared record length is
// validated against both the buffer and the header's own extent.
func DecodeRecord(b []byte, off int) (RecordHeader, int, error) {
	if !buf.Has(b, off, RecHeaderSize) {
		return RecordHeader{}, 0, fmt.Errorf("record header at %d: %w", off, ErrTruncated)
	}
	h := RecordHeader{
		Length:      ReadU16(b, off+RecLengthOffset),
		ValueLength: ReadU16(b, off+RecValueLengthOffset),
		IsText:      ReadU16(b, off+RecTypeOffset) != ValueBinary,
	}

	end := h.End(off)
	if end > len(b) {
		return RecordHeader{}, 0, fmt.Errorf(
			"record at %d declares %d bytes, buffer has %d: %w",
			off, h.Length, len(b)-off, ErrTruncated)
	}
	if end < off+RecHeaderSize {
		return RecordHeader{}, 0, fmt.Errorf(
			"record at %d declares %d bytes, less than its own header: %w",
			off, h.Length, ErrFormat)
	}

	key, keyEnd, err := ReadUTF16Z(b, off+RecKeyOffset, end)
	if err != nil {
		return RecordHeader{}, 0, err
	}
	h.Key = key

	valueOff := Align4(keyEnd)
	if n := h.ValueBytes(); n > 0 && valueOff+n > end {
		return RecordHeader{}, 0, fmt.Errorf(
			"record %q at %d: value of %d bytes exceeds record end %d: %w",
			h.Key, off, n, end, ErrFormat)
	}
	return h, valueOff, nil
}

// EncodeRecord writes the header with a placeholder wLength and returns the
// offset of the reserved field so the caller can patch it once the value and
// children have been written. The caller must ensure the writer is
// DWORD-aligned before calling.
func EncodeRecord(w *Writer, h RecordHeader) (int, error) {
	lenPos := w.ReserveU16()
	w.PutU16(h.ValueLength)
	if h.IsText {
		w.PutU16(ValueText)
	} else {
		w.PutU16(ValueBinary)
	}
	key, err := EncodeUTF16(h.Key)
	if err != nil {
		return 0, err
	}
	w.Append(key)
	w.PutU16(0)
	w.Pad4()
	return lenPos, nil
}
