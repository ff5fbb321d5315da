package verinfo

// Display helpers for the descriptor's enumerated fields.

// FileFlagNames returns the symbolic names of the flags set in f, honoring
// the flags mask.
func FileFlagNames(f FixedFileInfo) []string {
	flags := f.FileFlags & f.FileFlagsMask
	names := []struct {
		bit  uint32
		name string
	}{
		{VS_FF_DEBUG, "VS_FF_DEBUG"},
		{VS_FF_PRERELEASE, "VS_FF_PRERELEASE"},
		{VS_FF_PATCHED, "VS_FF_PATCHED"},
		{VS_FF_PRIVATEBUILD, "VS_FF_PRIVATEBUILD"},
		{VS_FF_INFOINFERRED, "VS_FF_INFOINFERRED"},
		{VS_FF_SPECIALBUILD, "VS_FF_SPECIALBUILD"},
	}
	var set []string
	for _, n := range names {
		if flags&n.bit != 0 {
			set = append(set, n.name)
		}
	}
	return set
}

// FileOSName returns the symbolic name of a dwFileOS value.
func FileOSName(v uint32) string {
	switch v {
	case VOS_NT_WINDOWS32:
		return "VOS_NT_WINDOWS32"
	case VOS_NT:
		return "VOS_NT"
	case VOS__WINDOWS32:
		return "VOS__WINDOWS32"
	case VOS_DOS:
		return "VOS_DOS"
	default:
		return "VOS_UNKNOWN"
	}
}

// FileTypeName returns the symbolic name of a dwFileType value.
func FileTypeName(v uint32) string {
	switch v {
	case VFT_APP:
		return "VFT_APP"
	case VFT_DLL:
		return "VFT_DLL"
	case VFT_DRV:
		return "VFT_DRV"
	case VFT_FONT:
		return "VFT_FONT"
	case VFT_VXD:
		return "VFT_VXD"
	case VFT_STATIC_LIB:
		return "VFT_STATIC_LIB"
	default:
		return "VFT_UNKNOWN"
	}
}
