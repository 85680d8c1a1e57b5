// Package snapshot encodes and decodes the full persisted state a
// process_requests run needs to answer queries without re-reading
// base_requests or re-running Floyd-Warshall: stops, inter-stop
// distances, buses, routing settings, render settings, and the
// precomputed transit.Router graph and table.
//
// The wire format is a little-endian, length-delimited TLV framing
// with stable ordinal field tags (see tags.go) — resolving the choice
// the original implementation made with a generated protobuf schema,
// made here by hand since no protoc-generated code can be safely
// hand-authored. Every record is a sequence of (tag byte, varint
// length, payload) triples, preceded by a bare varint count for each
// list of records. The decoders expect each record to hold exactly the
// fields the encoder writes: an unexpected tag is rejected in render
// settings and buses, and elsewhere it is counted as one of the
// record's fields, so a snapshot with added fields is not readable by
// this package.
package snapshot
