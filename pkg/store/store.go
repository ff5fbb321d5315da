// Package store abstracts where raw version-resource bytes live. The codec
// in package verinfo only ever consumes and produces a flat byte buffer; a
// Store supplies that buffer and persists the edited one. Identifiers are
// opaque to the codec — a file path for FileStore, an arbitrary key for
// MemStore, or whatever an image-aware implementation resolves a
// (module, resource, language) triple to.
package store

// Store supplies and persists raw resource buffers.
type Store interface {
	// Load returns the bytes stored under id.
	Load(id string) ([]byte, error)
	// Save persists data under id, replacing any previous content.
	Save(id string, data []byte) error
}
