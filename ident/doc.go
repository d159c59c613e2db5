// Package ident converts 128 bit item identifiers to and from their
// textual encodings.
//
// Two encodings are accepted on input, each optionally prefixed with
// "uuid:":
//
//   - the canonical 36 character hex-and-hyphen form
//   - a 22 character URL-safe base64 form with padding stripped
//
// Canonical is the encoding used inside stored documents; Short is an
// 8 character prefix of it for display. Parse(Canonical(id)) and
// Parse(Compact(id)) both return id.
package ident
