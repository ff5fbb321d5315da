package verinfo

import "github.com/joshuapare/verskit/internal/format"

// Re-export the wire-level types and constants users need so they only have
// to import this package.

// FixedFileInfo is the fixed 52-byte numeric descriptor at the root of the
// tree (VS_FIXEDFILEINFO).
type FixedFileInfo = format.FixedFileInfo

// NewFixedFileInfo returns a descriptor with conventional defaults.
var NewFixedFileInfo = format.NewFixedFileInfo

// Well-known record keys.
const (
	RootKey           = format.RootKey
	StringFileInfoKey = format.StringFileInfoKey
	VarFileInfoKey    = format.VarFileInfoKey
	TranslationKey    = format.TranslationKey
)

// dwFileFlags bits.
const (
	VS_FF_DEBUG        = format.VS_FF_DEBUG
	VS_FF_PRERELEASE   = format.VS_FF_PRERELEASE
	VS_FF_PATCHED      = format.VS_FF_PATCHED
	VS_FF_PRIVATEBUILD = format.VS_FF_PRIVATEBUILD
	VS_FF_INFOINFERRED = format.VS_FF_INFOINFERRED
	VS_FF_SPECIALBUILD = format.VS_FF_SPECIALBUILD
)

// dwFileOS values.
const (
	VOS_UNKNOWN      = format.VOS_UNKNOWN
	VOS_DOS          = format.VOS_DOS
	VOS_NT           = format.VOS_NT
	VOS_NT_WINDOWS32 = format.VOS_NT_WINDOWS32
	VOS__WINDOWS32   = format.VOS__WINDOWS32
)

// dwFileType values.
const (
	VFT_UNKNOWN    = format.VFT_UNKNOWN
	VFT_APP        = format.VFT_APP
	VFT_DLL        = format.VFT_DLL
	VFT_DRV        = format.VFT_DRV
	VFT_FONT       = format.VFT_FONT
	VFT_VXD        = format.VFT_VXD
	VFT_STATIC_LIB = format.VFT_STATIC_LIB
)
