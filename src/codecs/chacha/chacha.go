// Package chacha provides a ChaCha20 stream codec.
//
// A Stream holds a single keystream position which advances with every byte
// it transforms, so the encode and decode directions of one logical stream
// need two Stream values created from the same key.
package chacha

import (
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

const KeySize = 32

// DeriveKey derives a cipher key from an arbitrary length secret.
func DeriveKey(secret []byte) [KeySize]byte {
	return blake2b.Sum256(secret)
}

type Stream struct {
	ciph    *chacha20.Cipher
	scratch []byte
}

// NewStream creates a Stream at keystream position 0.
// key must not be nil.
func NewStream(key *[KeySize]byte) *Stream {
	if key == nil {
		panic("chacha: NewStream called with nil key")
	}
	var nonce [chacha20.NonceSize]byte
	ciph, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &Stream{ciph: ciph}
}

// Encode XORs src with the keystream and writes the result to w.
// The keystream advances even when the write fails, so a Stream cannot be
// retried after an error.
func (s *Stream) Encode(w io.Writer, src []byte) error {
	if len(s.scratch) < len(src) {
		s.scratch = make([]byte, len(src))
	}
	s.ciph.XORKeyStream(s.scratch[:len(src)], src)
	_, err := w.Write(s.scratch[:len(src)])
	return err
}

// Decode reads from r and XORs the bytes in place with the keystream.
func (s *Stream) Decode(r io.Reader, dst []byte) (int, error) {
	n, err := r.Read(dst)
	if n > 0 {
		s.ciph.XORKeyStream(dst[:n], dst[:n])
	}
	return n, err
}
