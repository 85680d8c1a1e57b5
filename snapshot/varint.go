package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// writeField frames payload as (tag byte, varint length, payload).
func writeField(buf *bytes.Buffer, tag byte, payload []byte) {
	buf.WriteByte(tag)
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(payload)))
	buf.Write(lenBuf[:n])
	buf.Write(payload)
}

func writeVarintField(buf *bytes.Buffer, tag byte, v uint64) {
	var payload [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(payload[:], v)
	writeField(buf, tag, payload[:n])
}

func writeFloatField(buf *bytes.Buffer, tag byte, v float64) {
	var payload [8]byte
	binary.LittleEndian.PutUint64(payload[:], math.Float64bits(v))
	writeField(buf, tag, payload[:])
}

func writeStringField(buf *bytes.Buffer, tag byte, s string) {
	writeField(buf, tag, []byte(s))
}

func writeBoolField(buf *bytes.Buffer, tag byte, b bool) {
	v := byte(0)
	if b {
		v = 1
	}
	writeField(buf, tag, []byte{v})
}

// field is one decoded (tag, payload) pair.
type field struct {
	tag     byte
	payload []byte
}

// readField reads one field from r. It returns io.EOF only when r is
// exhausted exactly at a field boundary.
func readField(r *bytes.Reader) (field, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return field{}, err
	}
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return field{}, fmt.Errorf("snapshot: reading length for tag %d: %w", tag, err)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return field{}, fmt.Errorf("snapshot: reading payload for tag %d: %w", tag, err)
	}
	return field{tag: tag, payload: payload}, nil
}

func (f field) asUvarint() (uint64, error) {
	v, n := binary.Uvarint(f.payload)
	if n <= 0 {
		return 0, fmt.Errorf("snapshot: malformed varint for tag %d", f.tag)
	}
	return v, nil
}

func (f field) asFloat64() (float64, error) {
	if len(f.payload) != 8 {
		return 0, fmt.Errorf("snapshot: malformed float64 for tag %d", f.tag)
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(f.payload)), nil
}

func (f field) asString() string {
	return string(f.payload)
}

func (f field) asBool() bool {
	return len(f.payload) == 1 && f.payload[0] == 1
}

// writeCount writes a bare varint (used as a repetition count ahead of
// a list of records, not wrapped in a tagged field since its position
// in the stream is fixed by convention).
func writeCount(buf *bytes.Buffer, n int) {
	var tmp [binary.MaxVarintLen64]byte
	written := binary.PutUvarint(tmp[:], uint64(n))
	buf.Write(tmp[:written])
}

func readCount(r *bytes.Reader) (int, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, fmt.Errorf("snapshot: reading count: %w", err)
	}
	return int(v), nil
}

func putFloat64(dst []byte, v float64) {
	binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
}

func getFloat64(src []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(src))
}

// putUvarintTmp writes a bare varint (no tag/length framing) into dst,
// returning the number of bytes written. Used for compact repeated
// integer lists nested inside an already-framed field.
func putUvarintTmp(dst []byte, v uint64) int {
	return binary.PutUvarint(dst, v)
}

func readUvarint(r *bytes.Reader) (uint64, error) {
	return binary.ReadUvarint(r)
}
