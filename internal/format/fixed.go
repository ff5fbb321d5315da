package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/verskit/internal/buf"
)

// FixedFileInfo is the fixed 52-byte numeric descriptor carried as the root
// record's value. Fields mirror VS_FIXEDFILEINFO; see consts.go for the
// exact layout.
type FixedFileInfo struct {
	Signature        uint32
	StrucVersion     uint32
	FileVersionMS    uint32
	FileVersionLS    uint32
	ProductVersionMS uint32
	ProductVersionLS uint32
	FileFlagsMask    uint32
	FileFlags        uint32
	FileOS           uint32
	FileType         uint32
	FileSubtype      uint32
	FileDateMS       uint32
	FileDateLS       uint32
}

// NewFixedFileInfo returns a descriptor with the conventional defaults for a
// freshly created resource.
func NewFixedFileInfo() FixedFileInfo {
	return FixedFileInfo{
		Signature:     FFISignature,
		StrucVersion:  FFIStrucVersion,
		FileFlagsMask: FFIDefaultFlagsMask,
		FileOS:        VOS_NT_WINDOWS32,
		FileType:      VFT_APP,
	}
}

// DecodeFixedFileInfo reads the 52-byte block at off. The signature is not
// validated here; a mismatch is a soft invariant surfaced via Valid.
func DecodeFixedFileInfo(b []byte, off int) (FixedFileInfo, error) {
	if !buf.Has(b, off, FFISize) {
		return FixedFileInfo{}, fmt.Errorf("fixed file info at %d: %w", off, ErrTruncated)
	}
	return FixedFileInfo{
		Signature:        ReadU32(b, off+FFISignatureOffset),
		StrucVersion:     ReadU32(b, off+FFIStrucVersionOffset),
		FileVersionMS:    ReadU32(b, off+FFIFileVersionMSOffset),
		FileVersionLS:    ReadU32(b, off+FFIFileVersionLSOffset),
		ProductVersionMS: ReadU32(b, off+FFIProductVersionMSOffset),
		ProductVersionLS: ReadU32(b, off+FFIProductVersionLSOffset),
		FileFlagsMask:    ReadU32(b, off+FFIFileFlagsMaskOffset),
		FileFlags:        ReadU32(b, off+FFIFileFlagsOffset),
		FileOS:           ReadU32(b, off+FFIFileOSOffset),
		FileType:         ReadU32(b, off+FFIFileTypeOffset),
		FileSubtype:      ReadU32(b, off+FFIFileSubtypeOffset),
		FileDateMS:       ReadU32(b, off+FFIFileDateMSOffset),
		FileDateLS:       ReadU32(b, off+FFIFileDateLSOffset),
	}, nil
}

// Encode appends the 52-byte block. The caller pads to DWORD afterwards.
func (f FixedFileInfo) Encode(w *Writer) {
	w.PutU32(f.Signature)
	w.PutU32(f.StrucVersion)
	w.PutU32(f.FileVersionMS)
	w.PutU32(f.FileVersionLS)
	w.PutU32(f.ProductVersionMS)
	w.PutU32(f.ProductVersionLS)
	w.PutU32(f.FileFlagsMask)
	w.PutU32(f.FileFlags)
	w.PutU32(f.FileOS)
	w.PutU32(f.FileType)
	w.PutU32(f.FileSubtype)
	w.PutU32(f.FileDateMS)
	w.PutU32(f.FileDateLS)
}

// Valid reports whether the signature matches FFISignature.
func (f FixedFileInfo) Valid() bool {
	return f.Signature == FFISignature
}

// FileVersion returns the file version as "major.minor.build.revision".
func (f FixedFileInfo) FileVersion() string {
	return FormatVersion(f.FileVersionMS, f.FileVersionLS)
}

// SetFileVersion parses s and stores it in the file version words.
func (f *FixedFileInfo) SetFileVersion(s string) error {
	ms, ls, err := ParseVersion(s)
	if err != nil {
		return err
	}
	f.FileVersionMS, f.FileVersionLS = ms, ls
	return nil
}

// ProductVersion returns the product version as "major.minor.build.revision".
func (f FixedFileInfo) ProductVersion() string {
	return FormatVersion(f.ProductVersionMS, f.ProductVersionLS)
}

// SetProductVersion parses s and stores it in the product version words.
func (f *FixedFileInfo) SetProductVersion(s string) error {
	ms, ls, err := ParseVersion(s)
	if err != nil {
		return err
	}
	f.ProductVersionMS, f.ProductVersionLS = ms, ls
	return nil
}

// FormatVersion renders the two version words as
// "major.minor.build.revision" by splitting each DWORD into its high and low
// words.
func FormatVersion(ms, ls uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", ms>>16, ms&0xFFFF, ls>>16, ls&0xFFFF)
}

// ParseVersion parses up to four dot-separated numeric components into the
// MS/LS version words. Missing trailing components default to 0; components
// beyond the fourth are ignored. A non-numeric component fails with
// ErrFormat.
func ParseVersion(s string) (ms, ls uint32, err error) {
	var words [4]uint16
	parts := strings.Split(s, ".")
	for i := 0; i < len(parts) && i < 4; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 16)
		if err != nil {
			return 0, 0, fmt.Errorf("version component %q: %w", parts[i], ErrFormat)
		}
		words[i] = uint16(v)
	}
	ms = uint32(words[0])<<16 | uint32(words[1])
	ls = uint32(words[2])<<16 | uint32(words[3])
	return ms, ls, nil
}
