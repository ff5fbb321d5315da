package verinfo

import "github.com/joshuapare/verskit/internal/format"

// Pair is one translation entry: a language id and a code page. On the wire
// each pair occupies one DWORD, language in the low word.
type Pair struct {
	Language uint16
	CodePage uint16
}

// Var is one named variable record inside a VarFileInfo subtree. The
// conventional record is "Translation", listing every language/codepage
// combination the string tables cover.
type Var struct {
	key    string
	isText bool
	pairs  []Pair
}

// NewVar returns an empty variable record named key.
func NewVar(key string) *Var {
	return &Var{key: key}
}

// Key returns the record name.
func (v *Var) Key() string { return v.key }

// Pairs returns the entries in declaration order. No reordering or
// deduplication is ever performed.
func (v *Var) Pairs() []Pair { return v.pairs }

// Add appends a pair.
func (v *Var) Add(p Pair) {
	v.pairs = append(v.pairs, p)
}

// VarFileInfo is a variable-table subtree: a named sequence of Var records.
// The record key is conventionally "VarFileInfo", but any child of the root
// whose key is not "StringFileInfo" decodes into this shape and keeps its
// own key.
type VarFileInfo struct {
	key    string
	isText bool
	vars   []*Var
}

// NewVarFileInfo returns an empty subtree keyed "VarFileInfo".
func NewVarFileInfo() *VarFileInfo {
	return &VarFileInfo{key: format.VarFileInfoKey, isText: true}
}

// Key returns the record key.
func (v *VarFileInfo) Key() string { return v.key }

// Vars returns the variable records in discovery order.
func (v *VarFileInfo) Vars() []*Var { return v.vars }

// Var returns the record named key.
func (v *VarFileInfo) Var(key string) (*Var, bool) {
	for _, vr := range v.vars {
		if vr.key == key {
			return vr, true
		}
	}
	return nil, false
}

// Add appends a variable record.
func (v *VarFileInfo) Add(vr *Var) {
	v.vars = append(v.vars, vr)
}

// AddTranslation appends a language/codepage pair to the "Translation"
// record, creating it if absent.
func (v *VarFileInfo) AddTranslation(lang, codepage uint16) {
	tr, ok := v.Var(format.TranslationKey)
	if !ok {
		tr = NewVar(format.TranslationKey)
		v.vars = append(v.vars, tr)
	}
	tr.Add(Pair{Language: lang, CodePage: codepage})
}

// Translations returns the pairs of the "Translation" record, if any.
func (v *VarFileInfo) Translations() []Pair {
	if tr, ok := v.Var(format.TranslationKey); ok {
		return tr.pairs
	}
	return nil
}

// decodeVarFileInfo decodes the subtree rooted at off and returns the
// aligned offset just past it.
func decodeVarFileInfo(b []byte, off int) (*VarFileInfo, int, error) {
	h, cur, err := format.DecodeRecord(b, off)
	if err != nil {
		return nil, 0, err
	}
	v := &VarFileInfo{key: h.Key, isText: h.IsText}

	end := h.End(off)
	for end-cur >= format.RecHeaderSize {
		if format.ReadU16(b, cur) == 0 {
			break // trailing padding
		}
		vh, valueOff, err := format.DecodeRecord(b, cur)
		if err != nil {
			return nil, 0, err
		}
		vr := &Var{key: vh.Key, isText: vh.IsText}
		n := vh.ValueBytes() / format.TranslationPairSize
		for i := 0; i < n; i++ {
			o := valueOff + i*format.TranslationPairSize
			vr.pairs = append(vr.pairs, Pair{
				Language: format.ReadU16(b, o),
				CodePage: format.ReadU16(b, o+2),
			})
		}
		v.vars = append(v.vars, vr)
		cur = format.Align4(vh.End(cur))
	}
	return v, format.Align4(end), nil
}

func (v *VarFileInfo) encode(w *format.Writer) error {
	start := w.Len()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		IsText: v.isText,
		Key:    v.key,
	})
	if err != nil {
		return err
	}
	for _, vr := range v.vars {
		w.Pad4()
		if err := vr.encode(w); err != nil {
			return err
		}
	}
	w.PatchU16(lenPos, uint16(w.Len()-start))
	return nil
}

func (v *Var) encode(w *format.Writer) error {
	valueBytes := len(v.pairs) * format.TranslationPairSize
	valueLen := valueBytes
	if v.isText {
		valueLen /= 2
	}
	start := w.Len()
	lenPos, err := format.EncodeRecord(w, format.RecordHeader{
		ValueLength: uint16(valueLen),
		IsText:      v.isText,
		Key:         v.key,
	})
	if err != nil {
		return err
	}
	for _, p := range v.pairs {
		w.PutU16(p.Language)
		w.PutU16(p.CodePage)
	}
	w.PatchU16(lenPos, uint16(w.Len()-start))
	return nil
}
