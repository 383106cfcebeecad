package contract

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// codecVersion leads every encoded record so the layout can change later without guessing.
const codecVersion byte = 1

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep lengths compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// writeBytes is writeString for raw buffers (hashes, computation io).
func (w *binWriter) writeBytes(b []byte) {
	w.writeVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// EncodeMessage packs a Message into deterministic bytes for storage.
func EncodeMessage(m *Message) []byte {
	w := newWriter()
	w.buf.WriteByte(codecVersion)
	w.writeUint64(m.ID)
	w.writeString(m.SenderUniverse)
	w.writeString(m.RecipientUniverse)
	w.writeBytes(m.ContentHash)
	w.writeInt64(m.Timestamp)
	w.writeUint64(m.ChannelID)
	return w.bytes()
}

// EncodeComputation packs a Computation, output buffer and status included.
func EncodeComputation(c *Computation) []byte {
	w := newWriter()
	w.buf.WriteByte(codecVersion)
	w.writeUint64(c.ID)
	w.writeString(c.ComputationType)
	w.writeBytes(c.InputData)
	w.writeBytes(c.OutputData)
	w.writeString(string(c.Status))
	return w.bytes()
}

// EncodeChannel packs a Channel. Strength goes out as a fixed int64 since it may be adjusted often.
func EncodeChannel(ch *Channel) []byte {
	w := newWriter()
	w.buf.WriteByte(codecVersion)
	w.writeUint64(ch.ID)
	w.writeString(ch.UniverseA)
	w.writeString(ch.UniverseB)
	w.writeInt64(ch.EntanglementStrength)
	w.writeString(string(ch.Status))
	return w.bytes()
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

var errUnexpectedEOF = errors.New("unexpected EOF")

type binReader struct {
	data []byte
	pos  int
}

// newReader wraps raw bytes so we can peek sequentially w/out copying.
func newReader(data []byte) *binReader {
	return &binReader{data: data}
}

func (r *binReader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errUnexpectedEOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// readVersion rejects blobs written by a layout we do not know.
func (r *binReader) readVersion() error {
	v, err := r.readByte()
	if err != nil {
		return err
	}
	if v != codecVersion {
		return fmt.Errorf("unsupported codec version %d", v)
	}
	return nil
}

func (r *binReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errUnexpectedEOF
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (r *binReader) readVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// readRaw reads the varint length then slices out the chunk.
func (r *binReader) readRaw() ([]byte, error) {
	l, err := r.readVarUint()
	if err != nil {
		return nil, err
	}
	if l > uint64(len(r.data)-r.pos) {
		return nil, errUnexpectedEOF
	}
	chunk := r.data[r.pos : r.pos+int(l)]
	r.pos += int(l)
	return chunk, nil
}

func (r *binReader) readString() (string, error) {
	b, err := r.readRaw()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// readBytes copies, the reader may sit on top of a string-backed buffer.
func (r *binReader) readBytes() ([]byte, error) {
	b, err := r.readRaw()
	if err != nil {
		return nil, err
	}
	return cloneBytes(b), nil
}

// done flags trailing garbage, which would mean the blob is not what we think it is.
func (r *binReader) done() error {
	if r.pos != len(r.data) {
		return fmt.Errorf("%d trailing bytes", len(r.data)-r.pos)
	}
	return nil
}

// DecodeMessage is the inverse of EncodeMessage.
func DecodeMessage(data []byte) (*Message, error) {
	r := newReader(data)
	var m Message
	var err error
	if err = r.readVersion(); err != nil {
		return nil, err
	}
	if m.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if m.SenderUniverse, err = r.readString(); err != nil {
		return nil, err
	}
	if m.RecipientUniverse, err = r.readString(); err != nil {
		return nil, err
	}
	if m.ContentHash, err = r.readBytes(); err != nil {
		return nil, err
	}
	if m.Timestamp, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.ChannelID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if err := r.done(); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeComputation is the inverse of EncodeComputation.
func DecodeComputation(data []byte) (*Computation, error) {
	r := newReader(data)
	var c Computation
	var err error
	if err = r.readVersion(); err != nil {
		return nil, err
	}
	if c.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if c.ComputationType, err = r.readString(); err != nil {
		return nil, err
	}
	if c.InputData, err = r.readBytes(); err != nil {
		return nil, err
	}
	if c.OutputData, err = r.readBytes(); err != nil {
		return nil, err
	}
	status, err := r.readString()
	if err != nil {
		return nil, err
	}
	c.Status = ComputationStatus(status)
	if err := r.done(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DecodeChannel is the inverse of EncodeChannel.
func DecodeChannel(data []byte) (*Channel, error) {
	r := newReader(data)
	var ch Channel
	var err error
	if err = r.readVersion(); err != nil {
		return nil, err
	}
	if ch.ID, err = r.readUint64(); err != nil {
		return nil, err
	}
	if ch.UniverseA, err = r.readString(); err != nil {
		return nil, err
	}
	if ch.UniverseB, err = r.readString(); err != nil {
		return nil, err
	}
	if ch.EntanglementStrength, err = r.readInt64(); err != nil {
		return nil, err
	}
	status, err := r.readString()
	if err != nil {
		return nil, err
	}
	ch.Status = ChannelStatus(status)
	if err := r.done(); err != nil {
		return nil, err
	}
	return &ch, nil
}
