// Package format houses the low-level codec for the VS_VERSIONINFO resource
// record format. The goal is to keep the wire-level parsing and serialization
// focused and independent from the public API so higher-level packages can
// present the data in a more ergonomic form.
package format

// Well-known record keys. The root record is always named VS_VERSION_INFO;
// its children select the decoder by key.
const (
	RootKey           = "VS_VERSION_INFO"
	StringFileInfoKey = "StringFileInfo"
	VarFileInfoKey    = "VarFileInfo"
	TranslationKey    = "Translation"
)

// Record header layout. Every node in the tree starts with this envelope:
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    2    wLength: total record size including header and children
//	 0x02    2    wValueLength: value size (bytes, or UTF-16 units for text)
//	 0x04    2    wType: 0 = binary value, 1 = text value
//	 0x06    var  szKey: NUL-terminated UTF-16LE name
//	 ----    var  padding to the next DWORD boundary
//
// All integers are little-endian. wLength is only known once every child has
// been serialized, so encoders reserve the field and patch it afterwards.
const (
	RecLengthOffset      = 0x00
	RecValueLengthOffset = 0x02
	RecTypeOffset        = 0x04
	RecKeyOffset         = 0x06

	// RecHeaderSize is the fixed portion of the header before szKey.
	RecHeaderSize = RecKeyOffset
)

// wType discriminant values.
const (
	ValueBinary = 0
	ValueText   = 1
)

// DWORD alignment of records relative to the resource start.
const (
	DWORDAlignment     = 4
	DWORDAlignmentMask = DWORDAlignment - 1
)

// VS_FIXEDFILEINFO layout. The root record's value is this fixed 52-byte
// block (13 DWORDs):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    dwSignature (0xFEEF04BD)
//	 0x04    4    dwStrucVersion
//	 0x08    4    dwFileVersionMS (major << 16 | minor)
//	 0x0C    4    dwFileVersionLS (build << 16 | revision)
//	 0x10    4    dwProductVersionMS
//	 0x14    4    dwProductVersionLS
//	 0x18    4    dwFileFlagsMask
//	 0x1C    4    dwFileFlags
//	 0x20    4    dwFileOS
//	 0x24    4    dwFileType
//	 0x28    4    dwFileSubtype
//	 0x2C    4    dwFileDateMS
//	 0x30    4    dwFileDateLS
const (
	FFISignatureOffset        = 0x00
	FFIStrucVersionOffset     = 0x04
	FFIFileVersionMSOffset    = 0x08
	FFIFileVersionLSOffset    = 0x0C
	FFIProductVersionMSOffset = 0x10
	FFIProductVersionLSOffset = 0x14
	FFIFileFlagsMaskOffset    = 0x18
	FFIFileFlagsOffset        = 0x1C
	FFIFileOSOffset           = 0x20
	FFIFileTypeOffset         = 0x24
	FFIFileSubtypeOffset      = 0x28
	FFIFileDateMSOffset       = 0x2C
	FFIFileDateLSOffset       = 0x30

	// FFISize is the size of the whole block.
	FFISize = 52
)

const (
	// FFISignature is the magic at the start of every VS_FIXEDFILEINFO.
	FFISignature = 0xFEEF04BD

	// FFIStrucVersion is the structure version written by current tools.
	FFIStrucVersion = 0x00010000

	// FFIDefaultFlagsMask covers all VS_FF_* bits defined below.
	FFIDefaultFlagsMask = 0x0000003F
)

// dwFileFlags bits.
const (
	VS_FF_DEBUG        = 0x00000001
	VS_FF_PRERELEASE   = 0x00000002
	VS_FF_PATCHED      = 0x00000004
	VS_FF_PRIVATEBUILD = 0x00000008
	VS_FF_INFOINFERRED = 0x00000010
	VS_FF_SPECIALBUILD = 0x00000020
)

// dwFileOS values.
const (
	VOS_UNKNOWN    = 0x00000000
	VOS_DOS        = 0x00010000
	VOS_OS216      = 0x00020000
	VOS_OS232      = 0x00030000
	VOS_NT         = 0x00040000
	VOS__WINDOWS16 = 0x00000001
	VOS__PM16      = 0x00000002
	VOS__PM32      = 0x00000003
	VOS__WINDOWS32 = 0x00000004

	VOS_DOS_WINDOWS16 = 0x00010001
	VOS_DOS_WINDOWS32 = 0x00010004
	VOS_OS216_PM16    = 0x00020002
	VOS_OS232_PM32    = 0x00030003
	VOS_NT_WINDOWS32  = 0x00040004
)

// dwFileType values.
const (
	VFT_UNKNOWN    = 0x00000000
	VFT_APP        = 0x00000001
	VFT_DLL        = 0x00000002
	VFT_DRV        = 0x00000003
	VFT_FONT       = 0x00000004
	VFT_VXD        = 0x00000005
	VFT_STATIC_LIB = 0x00000007
)

// Translation entries are one DWORD per pair: language id in the low word,
// code page in the high word, both little-endian on the wire.
const TranslationPairSize = 4

// MaxKeyLen bounds szKey scans on hostile input. Real keys are short
// ("VS_VERSION_INFO" is the longest well-known one); anything past this is
// treated as a missing terminator.
const MaxKeyLen = 256
