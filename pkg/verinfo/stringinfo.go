package verinfo

import (
	"fmt"
	"strconv"

	"github.com/Velocidex/ordereddict"

	"github.com/joshuapare/verskit/internal/format"
)

// StringTable is one language-tagged table of name/value strings. The key is
// an 8-hex-digit string: 4 digits of language id followed by 4 digits of
// code page, e.g. "040904B0" for en-US / Unicode. Entries preserve
// insertion order; setting an existing name overwrites it in place.
type StringTable struct {
	key     string
	isText  bool
	strings *ordereddict.Dict
}

// NewStringTable returns an empty table tagged with key.
func NewStringTable(key string) *StringTable {
	return &StringTable{key: key, isText: true, strings: ordereddict.NewDict()}
}

// Key returns the language+codepage tag.
func (t *StringTable) Key() string { return t.key }

// Language parses the first 4 hex digits of the key as a language id.
func (t *StringTable) Language() (uint16, error) {
	if len(t.key) < 4 {
		return 0, formatErr(fmt.Sprintf("string table key %q too short", t.key), nil)
	}
	v, err := strconv.ParseUint(t.key[:4], 16, 16)
	if err != nil {
		return 0, formatErr(fmt.Sprintf("string table key %q", t.key), err)
	}
	return uint16(v), nil
}

// CodePage parses the last 4 hex digits of the key as a code page.
func (t *StringTable) CodePage() (uint16, error) {
	if len(t.key) < 8 {
		return 0, formatErr(fmt.Sprintf("string table key %q too short", t.key), nil)
	}
	v, err := strconv.ParseUint(t.key[4:8], 16, 16)
	if err != nil {
		return 0, formatErr(fmt.Sprintf("string table key %q", t.key), err)
	}
	return uint16(v), nil
}

// Set stores a name/value pair, overwriting any previous value for name.
func (t *StringTable) Set(name, value string) {
	t.strings.Set(name, value)
}

// Get returns the value stored under name.
func (t *StringTable) Get(name string) (string, bool) {
	v, ok := t.strings.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Names returns the entry names in insertion order.
func (t *StringTable) Names() []string { return t.strings.Keys() }

// Len returns the number of entries.
func (t *StringTable) Len() int { return t.strings.Len() }

// StringFileInfo is the "StringFileInfo" subtree: an ordered sequence of
// language-tagged string tables.
type StringFileInfo struct {
	isText bool
	tables []*StringTable
}

// NewStringFileInfo returns an empty StringFileInfo node.
func NewStringFileInfo() *StringFileInfo {
	return &StringFileInfo{isText: true}
}

// Key returns the literal record key "StringFileInfo".
func (s *StringFileInfo) Key() string { return format.StringFileInfoKey }

// Tables returns the tables in discovery order.
func (s *StringFileInfo) Tables() []*StringTable { return s.tables }

// Table returns the table tagged with key.
func (s *StringFileInfo) Table(key string) (*StringTable, bool) {
	for _, t := range s.tables {
		if t.key == key {
			return t, true
		}
	}
	return nil, false
}

// Add appends a table.
func (s *StringFileInfo) Add(t *StringTable) {
	s.tables = append(s.tables, t)
}

// decodeStringFileInfo decodes the subtree rooted at off and returns the
// aligned offset just past it.
func decodeStringFileInfo(b []byte, off int) (*StringFileInfo, int, error) {
	h, cur, err := format.DecodeRecord(b, off)
	if err != nil {
		return nil, 0, err
	}
	s := &StringFileInfo{isText: h.IsText}

	end := h.End(off)
	for end-cur >= format.RecHeaderSize {
		if format.ReadU16(b, cur) == 0 {
			break // trailing padding
		}
		t, next, err := decodeStringTable(b, cur)
		if err != nil {
			return nil, 0, err
		}
		s.tables = append(s.tables, t)
		cur = next
	}
	return s, format.Align4(end), nil
}

func decodeStringTable(b []byte, off int) (*StringTable, int, error) {
	h, cur, err := format.DecodeRecord(b, off)
	if err != nil {
		return nil, 0, err
	}
	t := &StringTable{key: h.Key, isText: h.IsText, strings: ordereddict.NewDict()}

	end := h.End(off)
	for end-cur >= format.RecHeaderSize {
		if format.ReadU16(b, cur) == 0 {
			break
		}
		sh, valueOff, err := format.DecodeRecord(b, cur)
		if err != nil {
			return nil, 0, err
		}
		raw := b[valueOff : valueOff+sh.ValueBytes()]
		// The wire form carries a trailing NUL code unit; it is not part of
		// the value.
		if n := len(raw); n >= 2 && raw[n-1] == 0 && raw[n-2] == 0 {
			raw = raw[:n-2]
		}
		val, err := format.DecodeUTF16(raw)
		if err != nil {
			return nil, 0, err
		}
		t.strings.Set(sh.Key, val)
		cur = format.Align4(sh.End(cur))
	}
	return t, format.Align4(end), nil
}

// encode writes the subtree, back-patching each container's length after its
// children.
func (s *StringFileInfo) encode(w *format.Writer) error {
	start := w.Len()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		IsText: s.isText,
		Key:    format.StringFileInfoKey,
	})
	if err != nil {
		return err
	}
	for _, t := range s.tables {
		w.Pad4()
		if err := t.encode(w); err != nil {
			return err
		}
	}
	w.PatchU16(lenPos, uint16(w.Len()-start))
	return nil
}

func (t *StringTable) encode(w *format.Writer) error {
	start := w.Len()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		IsText: t.isText,
		Key:    t.key,
	})
	if err != nil {
		return err
	}
	for _, name := range t.strings.Keys() {
		value, _ := t.Get(name)
		w.Pad4()
		if err := encodeString(w, name, value); err != nil {
			return err
		}
	}
	w.PatchU16(lenPos, uint16(w.Len()-start))
	return nil
}

func encodeString(w *format.Writer, name, value string) error {
	payload, err := format.EncodeUTF16(value)
	if err != nil {
		return err
	}
	start := w.Len()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		// wValueLength counts UTF-16 units including the terminator.
		ValueLength: uint16(len(payload)/2 + 1),
		IsText:      true,
		Key:         name,
	})
	if err != nil {
		return err
	}
	w.Append(payload)
	w.PutU16(0)
	w.PatchU16(lenPos, uint16(w.Len()-start))
	return nil
}
