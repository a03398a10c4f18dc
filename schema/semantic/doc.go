// Package semantic implements the schema validation pipeline: it turns
// a rose tree of ast.Schema values into a flat, cross-referenced IR of
// Enum, Struct, Table, and Union declarations the encoder and decoder
// can be generated against. It plays the role Claw's own idl.Validate
// and type-checking passes once played here, reworked around
// FlatBuffers' declaration kinds and namespace-walk-up resolution
// instead of Claw's.
package semantic
