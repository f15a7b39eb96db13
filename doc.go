// Package uqpack is a compact, URL-safe encoding scheme for small
// structured payloads. Encode turns a Go value into a single ASCII
// string safe for a URL, query parameter, or path segment; Decode
// recovers the original value and authenticates it against accidental
// corruption.
//
// A payload moves through four stages on encode — serialize, compress,
// radix-encode, frame — and the exact inverse on decode:
//
//	value -> serialize -> compress -> radix-encode -> frame -> string
//	string -> unframe -> radix-decode -> decompress -> deserialize -> value
//
// The wire form is "<header>:<body>:<tag>": a 4-byte self-describing
// header, a radix-encoded body, and a 2-character keyed-checksum tag.
// See pkg/frame for the exact grammar.
//
// This is not an authenticated-encryption scheme. The checksum detects
// accidental corruption, not tampering by an adversary who knows the
// (public, overridable) default key.
package uqpack
