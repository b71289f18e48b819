// Package simpledrop provides an anonymous file relay: callers store a blob
// and get back an opaque, unguessable key; anyone holding the key can fetch
// the raw bytes with a content type sniffed from the bytes themselves; a
// shared API key authorizes early deletion, and a retention sweep removes
// everything older than a configured age.
//
// The package exposes a single Service interface over a pluggable BlobStore.
// Implementations of BlobStore (memory, filesystem, S3) live under
// subpackages, as do the key generator, content sniffer, retention sweeper,
// HTTP handlers, and prometheus instrumentation.
package simpledrop
