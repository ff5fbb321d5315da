package format

import "encoding/binary"

// Writer is an append-only serialization buffer with the reserve/patch
// protocol required by self-referential record lengths: a container reserves
// its wLength field, writes its value and children, then patches the field
// with the final size. Offsets handed out by ReserveU16 stay valid because
// the buffer only ever grows.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with a small initial capacity.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 512)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// PutU16 appends a little-endian uint16.
func (w *Writer) PutU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// PutU32 appends a little-endian uint32.
func (w *Writer) PutU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Append appends raw bytes.
func (w *Writer) Append(b []byte) {
	w.buf = append(w.buf, b...)
}

// Pad4 appends zero bytes until the length is DWORD-aligned.
func (w *Writer) Pad4() {
	for len(w.buf)%DWORDAlignment != 0 {
		w.buf = append(w.buf, 0)
	}
}

// ReserveU16 appends a zero uint16 and returns its offset for PatchU16.
func (w *Writer) ReserveU16() int {
	off := len(w.buf)
	w.buf = append(w.buf, 0, 0)
	return off
}

// PatchU16 overwrites a previously reserved uint16 in place.
func (w *Writer) PatchU16(off int, v uint16) {
	binary.LittleEndian.PutUint16(w.buf[off:off+2], v)
}
