package verinfo

import (
	"fmt"

	"github.com/Velocidex/ordereddict"

	"github.com/joshuapare/verskit/internal/format"
)

// Node is a child subtree of the version resource: either a *StringFileInfo
// or a *VarFileInfo. The set is closed; decode dispatches on the record key
// and treats every key other than "StringFileInfo" as a variable table.
type Node interface {
	Key() string
	encode(w *format.Writer) error
}

// VersionInfo is the whole version resource tree: the root record, the fixed
// numeric descriptor, and a keyed collection of child subtrees. Children
// keep discovery order; SetChild under an existing key overwrites it (the
// format permits duplicate family keys, this model deliberately keeps only
// the last one).
type VersionInfo struct {
	// Fixed is the numeric descriptor carried as the root record's value.
	Fixed FixedFileInfo

	rootKey  string
	isText   bool
	children *ordereddict.Dict
	language uint16
}

// New returns an empty tree with defaulted descriptor values, ready for
// population and encoding.
func New() *VersionInfo {
	return &VersionInfo{
		Fixed:    format.NewFixedFileInfo(),
		rootKey:  format.RootKey,
		children: ordereddict.NewDict(),
	}
}

// Decode materializes a complete version resource from b. Decoding is
// all-or-nothing: any malformed length field or truncation fails the whole
// decode with a format error and no partial tree.
func Decode(b []byte) (*VersionInfo, error) {
	h, valueOff, err := format.DecodeRecord(b, 0)
	if err != nil {
		return nil, formatErr("decode version resource", err)
	}

	v := New()
	v.rootKey = h.Key
	v.isText = h.IsText

	if h.ValueLength != 0 {
		if h.ValueBytes() != format.FFISize {
			return nil, formatErr(fmt.Sprintf(
				"root value is %d bytes, want %d", h.ValueBytes(), format.FFISize), nil)
		}
		v.Fixed, err = format.DecodeFixedFileInfo(b, valueOff)
		if err != nil {
			return nil, formatErr("decode version resource", err)
		}
	}

	end := h.End(0)
	cur := format.Align4(valueOff + h.ValueBytes())
	for end-cur >= format.RecHeaderSize {
		if format.ReadU16(b, cur) == 0 {
			break // trailing padding
		}
		child, next, err := decodeChild(b, cur)
		if err != nil {
			return nil, formatErr("decode version resource", err)
		}
		v.children.Set(child.Key(), child)
		cur = next
	}

	v.language = firstTableLanguage(v)
	return v, nil
}

// decodeChild peeks the child's key and dispatches. "StringFileInfo" selects
// the string-table decoder; every other key decodes as a variable table.
func decodeChild(b []byte, off int) (Node, int, error) {
	h, _, err := format.DecodeRecord(b, off)
	if err != nil {
		return nil, 0, err
	}
	switch h.Key {
	case format.StringFileInfoKey:
		return decodeStringFileInfo(b, off)
	default:
		return decodeVarFileInfo(b, off)
	}
}

// firstTableLanguage reads the resource language from the first string
// table's key, per the format's convention.
func firstTableLanguage(v *VersionInfo) uint16 {
	s := v.StringInfo()
	if s == nil || len(s.tables) == 0 {
		return 0
	}
	lang, err := s.tables[0].Language()
	if err != nil {
		return 0
	}
	return lang
}

// Encode serializes the tree. The root reserves its length field, writes the
// descriptor and every child in mapping order, then back-patches the total;
// each container level repeats the same protocol. The output length is
// always a multiple of 4. Encoding a well-formed tree cannot fail.
func (v *VersionInfo) Encode() ([]byte, error) {
	w := format.NewWriter()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		ValueLength: format.FFISize,
		IsText:      v.isText,
		Key:         v.rootKey,
	})
	if err != nil {
		return nil, err
	}
	v.Fixed.Encode(w)
	w.Pad4()

	for _, key := range v.children.Keys() {
		raw, _ := v.children.Get(key)
		child, ok := raw.(Node)
		if !ok {
			return nil, fmt.Errorf("child %q is not a version resource node", key)
		}
		w.Pad4()
		if err := child.encode(w); err != nil {
			return nil, err
		}
	}

	w.PatchU16(lenPos, uint16(w.Len()))
	w.Pad4()
	return w.Bytes(), nil
}

// Child returns the subtree stored under key, or ErrNotFound.
func (v *VersionInfo) Child(key string) (Node, error) {
	raw, ok := v.children.Get(key)
	if !ok {
		return nil, &Error{
			Kind: ErrKindNotFound,
			Msg:  fmt.Sprintf("child %q", key),
			Err:  ErrNotFound,
		}
	}
	return raw.(Node), nil
}

// SetChild stores node under key, overwriting any previous entry.
func (v *VersionInfo) SetChild(key string, node Node) {
	v.children.Set(key, node)
}

// Keys returns the child keys in discovery order.
func (v *VersionInfo) Keys() []string { return v.children.Keys() }

// Language returns the resource language id, taken from the first string
// table's key during decode. Zero when no table declared one.
func (v *VersionInfo) Language() uint16 { return v.language }

// FileVersion returns the file version as "major.minor.build.revision".
func (v *VersionInfo) FileVersion() string { return v.Fixed.FileVersion() }

// SetFileVersion parses s into the descriptor's file version words. Missing
// trailing components default to 0; components beyond the fourth are
// ignored.
func (v *VersionInfo) SetFileVersion(s string) error {
	if err := v.Fixed.SetFileVersion(s); err != nil {
		return formatErr(fmt.Sprintf("set file version %q", s), err)
	}
	return nil
}

// ProductVersion returns the product version as
// "major.minor.build.revision".
func (v *VersionInfo) ProductVersion() string { return v.Fixed.ProductVersion() }

// SetProductVersion parses s into the descriptor's product version words.
func (v *VersionInfo) SetProductVersion(s string) error {
	if err := v.Fixed.SetProductVersion(s); err != nil {
		return formatErr(fmt.Sprintf("set product version %q", s), err)
	}
	return nil
}

// StringInfo returns the "StringFileInfo" child, or nil when absent.
func (v *VersionInfo) StringInfo() *StringFileInfo {
	raw, ok := v.children.Get(format.StringFileInfoKey)
	if !ok {
		return nil
	}
	s, _ := raw.(*StringFileInfo)
	return s
}

// VarInfo returns the "VarFileInfo" child, or nil when absent.
func (v *VersionInfo) VarInfo() *VarFileInfo {
	raw, ok := v.children.Get(format.VarFileInfoKey)
	if !ok {
		return nil
	}
	vi, _ := raw.(*VarFileInfo)
	return vi
}

// SetString stores a name/value pair in the table tagged tableKey, creating
// the StringFileInfo subtree and the table on demand.
func (v *VersionInfo) SetString(tableKey, name, value string) {
	s := v.StringInfo()
	if s == nil {
		s = NewStringFileInfo()
		v.children.Set(format.StringFileInfoKey, s)
	}
	t, ok := s.Table(tableKey)
	if !ok {
		t = NewStringTable(tableKey)
		s.Add(t)
	}
	t.Set(name, value)
}

// Strings flattens every string table into a single name/value map. Later
// tables win on duplicate names.
func (v *VersionInfo) Strings() map[string]string {
	result := make(map[string]string)
	s := v.StringInfo()
	if s == nil {
		return result
	}
	for _, t := range s.tables {
		for _, name := range t.Names() {
			if val, ok := t.Get(name); ok {
				result[name] = val
			}
		}
	}
	return result
}

// AddTranslation records a language/codepage pair in the "VarFileInfo"
// child's "Translation" record, creating both on demand.
func (v *VersionInfo) AddTranslation(lang, codepage uint16) {
	vi := v.VarInfo()
	if vi == nil {
		vi = NewVarFileInfo()
		v.children.Set(format.VarFileInfoKey, vi)
	}
	vi.AddTranslation(lang, codepage)
}
