// Package sniff infers a MIME type from raw bytes. No filename or
// client-declared type is ever persisted with an object, so the sniffed type
// is the only content type the relay serves; trusting an uploader-declared
// type at retrieval time would expose every holder of a shared link to
// MIME-confusion attacks.
package sniff

import "github.com/gabriel-vasile/mimetype"

// FallbackType is returned for empty buffers.
const FallbackType = "application/octet-stream"

// Detect returns the best-guess MIME type for the buffer based on magic
// numbers. Unrecognized content yields application/octet-stream rather than
// an error.
func Detect(data []byte) string {
	if len(data) == 0 {
		return FallbackType
	}
	return mimetype.Detect(data).String()
}
