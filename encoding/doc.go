// Package encoding implements the FlatBuffers buffer encoder: a
// stateful, bottom-up builder that assembles a binary buffer from the
// leaves up, the way every FlatBuffers implementation does it. It
// plays the write-path role Claw's own struct encoder once did here,
// but targets vtables and tables instead of Claw's bitpacked headers.
package encoding
