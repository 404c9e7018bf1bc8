// package sbe implements simple binary encoding formats for serializing and deserializing data.
package sbe

import (
	"encoding/binary"
	"fmt"
	"io"
)

func AppendUint32(out []byte, x uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], x)
	return append(out, buf[:]...)
}

func ReadUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, fmt.Errorf("too short to contain uint32")
	}
	return binary.LittleEndian.Uint32(data[:4]), data[4:], nil
}

// AppendLP32 appends a length-prefixed byte slice to out.
// the length is encoded as a 32-bit little-endian integer.
func AppendLP32(out []byte, x []byte) []byte {
	out = AppendUint32(out, uint32(len(x)))
	return append(out, x...)
}

// ReadLP32 reads a length-prefixed byte slice from data.
// ReadLP32 reads the format output by AppendLP32.
func ReadLP32(x []byte) (ret []byte, rest []byte, _ error) {
	n, rest, err := ReadUint32(x)
	if err != nil {
		return nil, nil, err
	}
	if len(rest) < int(n) {
		return nil, nil, fmt.Errorf("too short to contain lp32")
	}
	return rest[:n], rest[n:], nil
}

// ReadLP32From reads a 32-bit length prefix from r, and then reads that many
// bytes into buf.  A clean io.EOF before the prefix is returned as io.EOF;
// an EOF in the middle of the prefix or the payload is io.ErrUnexpectedEOF.
func ReadLP32From(r io.Reader, buf []byte) (int, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return 0, err
	}
	n := binary.LittleEndian.Uint32(prefix[:])
	if int(n) > len(buf) {
		return 0, fmt.Errorf("lp32 length %d exceeds buffer %d", n, len(buf))
	}
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return int(n), nil
}
