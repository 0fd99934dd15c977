package wire

import (
	"encoding/binary"
	"unicode/utf8"
)

// ObjectID identifies a Wayland object. Object 0 is the null object; object 1
// is always wl_display.
type ObjectID uint32

// Opcode identifies a request or event within an interface.
type Opcode uint16

// HeaderSize is the fixed size, in bytes, of a message header.
const HeaderSize = 8

// MaxMessageSize bounds a single outgoing wire message: EncodeMessage
// rejects anything larger. Headers read from the compositor are not checked
// against it.
const MaxMessageSize = 1 << 16

// Header is the 8-byte prefix of every Wayland message: the target (or
// source) object, the opcode, and the total message size including this
// header (spec.md §3 "Wire header").
type Header struct {
	ObjectID ObjectID
	Opcode   Opcode
	Size     uint16
}

// EncodeHeader writes h into buf[:8]. buf must be at least HeaderSize bytes.
func EncodeHeader(buf []byte, h Header) error {
	if len(buf) < HeaderSize {
		return ErrInvalidSize
	}
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.ObjectID))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(h.Size)<<16|uint32(h.Opcode))
	return nil
}

// DecodeHeader reads a Header from the first 8 bytes of buf.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrInvalidSize
	}
	objectID := binary.LittleEndian.Uint32(buf[0:4])
	sizeOpcode := binary.LittleEndian.Uint32(buf[4:8])
	return Header{
		ObjectID: ObjectID(objectID),
		Opcode:   Opcode(sizeOpcode & 0xffff),
		Size:     uint16(sizeOpcode >> 16),
	}, nil
}

// PadTo32 rounds pos up to the next multiple of 4.
func PadTo32(pos int) int {
	return (pos + 3) &^ 3
}

// SizeString returns the unpadded wire size of a String argument: 4 bytes of
// length prefix, the UTF-8 bytes, and the trailing NUL.
func SizeString(s string) int {
	return 4 + len(s) + 1
}

// SizeArray returns the unpadded wire size of an Array argument.
func SizeArray(data []byte) int {
	return 4 + len(data)
}

// SizeGenericNewID returns the unpadded wire size of a dynamically typed
// new_id argument (interface name, version, id).
func SizeGenericNewID(iface string) int {
	return SizeString(iface) + 4 + 4
}

// Encoder appends wire-encoded values to an internal buffer. Each Put method
// advances the buffer by the field's size padded to a 4-byte boundary,
// matching the cursor-advance rule in spec.md §4.1.
type Encoder struct {
	buf []byte
}

// NewEncoder creates an Encoder with the given initial capacity.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: make([]byte, 0, capacity)}
}

// Reset clears the encoder for reuse.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// Bytes returns the bytes written so far.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// PutInt32 appends a signed 32-bit integer.
func (e *Encoder) PutInt32(v int32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutUint32 appends an unsigned 32-bit integer.
func (e *Encoder) PutUint32(v uint32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

// PutFixed appends a Fixed value.
func (e *Encoder) PutFixed(v Fixed) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutObject appends an object id.
func (e *Encoder) PutObject(id ObjectID) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(id))
}

// PutNewID appends a statically typed new_id argument (just the id).
func (e *Encoder) PutNewID(id ObjectID) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(id))
}

// PutNewIDDynamic appends a dynamically typed new_id: interface name,
// version, then id, per spec.md §3 "Generic (dynamically typed) new id".
func (e *Encoder) PutNewIDDynamic(iface string, version uint32, id ObjectID) {
	e.PutString(iface)
	e.PutUint32(version)
	e.PutUint32(uint32(id))
}

// PutString appends a length-prefixed, NUL-terminated, 4-byte-padded string.
func (e *Encoder) PutString(s string) {
	length := uint32(len(s) + 1)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, length)
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
	for pad := PadTo32(len(e.buf)) - len(e.buf); pad > 0; pad-- {
		e.buf = append(e.buf, 0)
	}
}

// PutArray appends a length-prefixed, 4-byte-padded byte array.
func (e *Encoder) PutArray(data []byte) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(len(data)))
	e.buf = append(e.buf, data...)
	for pad := PadTo32(len(e.buf)) - len(e.buf); pad > 0; pad-- {
		e.buf = append(e.buf, 0)
	}
}

// EncodeMessage prepends a header for (objectID, opcode) to args and returns
// the full wire message. FDs are never part of the returned bytes; they
// travel out of band via ancillary data.
func EncodeMessage(objectID ObjectID, opcode Opcode, args []byte) ([]byte, error) {
	total := HeaderSize + len(args)
	if total > MaxMessageSize {
		return nil, ErrInvalidSize
	}
	buf := make([]byte, HeaderSize, total)
	if err := EncodeHeader(buf[:HeaderSize], Header{ObjectID: objectID, Opcode: opcode, Size: uint16(total)}); err != nil {
		return nil, err
	}
	buf = append(buf, args...)
	return buf, nil
}

// Decoder reads wire-encoded values from a byte slice, tracking a read
// cursor and an independent cursor over any file descriptors delivered
// alongside the message.
type Decoder struct {
	buf    []byte
	offset int
	fds    []int
	fdIdx  int
}

// NewDecoder creates a Decoder over buf. fds are the file descriptors
// received alongside this message, if any, consumed in argument order by FD.
func NewDecoder(buf []byte, fds []int) *Decoder {
	return &Decoder{buf: buf, fds: fds}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.offset }

// Int32 reads a signed 32-bit integer.
func (d *Decoder) Int32() (int32, error) {
	if d.Remaining() < 4 {
		return 0, ErrInvalidSize
	}
	v := int32(binary.LittleEndian.Uint32(d.buf[d.offset:]))
	d.offset += 4
	return v, nil
}

// Uint32 reads an unsigned 32-bit integer.
func (d *Decoder) Uint32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, ErrInvalidSize
	}
	v := binary.LittleEndian.Uint32(d.buf[d.offset:])
	d.offset += 4
	return v, nil
}

// Fixed reads a Fixed value.
func (d *Decoder) Fixed() (Fixed, error) {
	v, err := d.Uint32()
	return Fixed(v), err
}

// Object reads an object id.
func (d *Decoder) Object() (ObjectID, error) {
	v, err := d.Uint32()
	return ObjectID(v), err
}

// NewID reads a statically typed new_id.
func (d *Decoder) NewID() (ObjectID, error) {
	return d.Object()
}

// String reads a length-prefixed, NUL-terminated, 4-byte-padded string.
//
// Per spec.md §4.1, length mismatches and invalid UTF-8 both surfaced as
// ErrInvalidSize historically; here they're distinguished (REDESIGN FLAG
// 9(a)).
func (d *Decoder) String() (string, error) {
	length, err := d.Uint32()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", ErrInvalidSize
	}
	if d.Remaining() < int(length) {
		return "", ErrInvalidSize
	}
	if d.buf[d.offset+int(length)-1] != 0 {
		return "", ErrStringNotTerminated
	}
	raw := d.buf[d.offset : d.offset+int(length)-1]
	if !utf8.Valid(raw) {
		// advance past the field regardless, matching the framer contract
		// that size() is well defined even on semantic decode failure.
		d.offset += PadTo32(int(length))
		return "", ErrInvalidUTF8
	}
	s := string(raw)
	d.offset += PadTo32(int(length))
	return s, nil
}

// Array reads a length-prefixed, 4-byte-padded byte array.
func (d *Decoder) Array() ([]byte, error) {
	length, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	if d.Remaining() < int(length) {
		return nil, ErrInvalidSize
	}
	data := make([]byte, length)
	copy(data, d.buf[d.offset:d.offset+int(length)])
	d.offset += PadTo32(int(length))
	return data, nil
}

// NewIDDynamic reads a dynamically typed new_id: interface, version, id.
func (d *Decoder) NewIDDynamic() (iface string, version uint32, id ObjectID, err error) {
	iface, err = d.String()
	if err != nil {
		return "", 0, 0, err
	}
	version, err = d.Uint32()
	if err != nil {
		return "", 0, 0, err
	}
	rawID, err := d.Object()
	return iface, version, rawID, err
}

// FD consumes the next out-of-band file descriptor delivered with this
// message.
func (d *Decoder) FD() (int, error) {
	if d.fdIdx >= len(d.fds) {
		return -1, ErrInvalidSize
	}
	fd := d.fds[d.fdIdx]
	d.fdIdx++
	return fd, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (d *Decoder) Skip(n int) error {
	if d.Remaining() < n {
		return ErrInvalidSize
	}
	d.offset += n
	return nil
}
