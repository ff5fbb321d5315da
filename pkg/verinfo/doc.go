/*
Package verinfo decodes and encodes the VS_VERSIONINFO resource record tree
embedded in Windows executable and library images.

# Quick Start

Decode a resource, edit it, and serialize it back:

	vi, err := verinfo.Decode(raw)
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(vi.FileVersion())

	if err := vi.SetFileVersion("2.5.100.3"); err != nil {
	    log.Fatal(err)
	}
	raw, err = vi.Encode()

Build a resource from scratch:

	vi := verinfo.New()
	_ = vi.SetFileVersion("1.0.0.1")
	vi.SetString("040904B0", "ProductName", "Widget")
	vi.AddTranslation(0x0409, 0x04B0)
	raw, err := vi.Encode()

# Model

A version resource is a tree of length-prefixed, DWORD-aligned records. The
root record ("VS_VERSION_INFO") carries the fixed 52-byte numeric descriptor
and a keyed collection of child subtrees: one "StringFileInfo" holding
language-tagged string tables, and variable tables ("VarFileInfo" with its
"Translation" entry being the conventional one). Children are kept in
discovery order; inserting under an existing key overwrites it. Decoding is
all-or-nothing: a malformed buffer yields an error and no partial tree.

A VersionInfo is not safe for concurrent mutation. Decoding independent
buffers into independent trees from multiple goroutines is safe.

Obtaining the raw resource bytes from an image and writing them back is the
job of a resource store (see package store); this package only transforms
buffers.
*/
package verinfo
