// Package protect derives password hashes for sheet and workbook
// protection using the salted, iterated SHA-512 scheme readers validate
// against: hash0 = SHA-512(salt || UTF-16LE(password)), then
// hash(i+1) = SHA-512(hash(i) || LE32(i)) for i in [0, SpinCount).
package protect

import (
	"context"
	"crypto"
	"crypto/rand"
	_ "crypto/sha512" // registers crypto.SHA512
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/unicode"
)

const (
	// AlgorithmSHA512 is the only algorithm name emitted.
	AlgorithmSHA512 = "SHA-512"
	// SpinCount is the number of chained hash rounds.
	SpinCount = 100000
	// SaltSize is the salt length in bytes.
	SaltSize = 16
	// MaxSpinCount bounds the rounds Verify will run for a descriptor.
	MaxSpinCount = 10 * SpinCount
)

var (
	// ErrCryptoUnavailable indicates the platform cannot supply secure
	// randomness or the SHA-512 digest.
	ErrCryptoUnavailable = errors.New("crypto unavailable")

	// ErrPasswordMismatch indicates a password does not match a descriptor.
	ErrPasswordMismatch = errors.New("password mismatch")

	// ErrInvalidDescriptor indicates a descriptor that cannot be verified.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// Descriptor is the verifier stored in the package for a protected sheet
// or workbook. All fields are strings as they appear in the XML.
type Descriptor struct {
	AlgorithmName string `json:"algorithmName" yaml:"algorithmName"`
	HashValue     string `json:"hashValue" yaml:"hashValue"`
	SaltValue     string `json:"saltValue" yaml:"saltValue"`
	SpinCount     string `json:"spinCount" yaml:"spinCount"`
}

// Clone returns a copy of d, or nil for a nil d.
func (d *Descriptor) Clone() *Descriptor {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}

// Deriver produces descriptors. The zero value reads salts from
// crypto/rand.
type Deriver struct {
	// Rand is the salt source. If nil, crypto/rand.Reader is used.
	Rand io.Reader
}

// Derive hashes password with a fresh random salt.
func Derive(password string) (*Descriptor, error) {
	return Deriver{}.Derive(password)
}

// DeriveWithSalt hashes password with a caller-supplied salt. Runs are
// reproducible for a fixed salt.
func DeriveWithSalt(password string, salt []byte) (*Descriptor, error) {
	return derive(password, salt, SpinCount)
}

// Derive hashes password with a fresh salt read from d.Rand.
func (d Deriver) Derive(password string) (*Descriptor, error) {
	r := d.Rand
	if r == nil {
		r = rand.Reader
	}
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, fmt.Errorf("%w: read salt: %v", ErrCryptoUnavailable, err)
	}
	return derive(password, salt, SpinCount)
}

// DeriveContext runs Derive on its own goroutine and returns early with
// ctx.Err() if ctx is done first. The hash chain itself is not
// interrupted; its result is discarded.
func (d Deriver) DeriveContext(ctx context.Context, password string) (*Descriptor, error) {
	select {
	case res := <-d.DeriveAsync(password):
		return res.Descriptor, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result is the outcome of an asynchronous derivation.
type Result struct {
	Descriptor *Descriptor
	Err        error
}

// DeriveAsync starts a derivation and returns a channel receiving exactly
// one Result. The channel is buffered, so abandoning it leaks nothing.
func (d Deriver) DeriveAsync(password string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		desc, err := d.Derive(password)
		ch <- Result{Descriptor: desc, Err: err}
	}()
	return ch
}

// Verify recomputes the hash of password with the salt and spin count of
// desc and reports ErrPasswordMismatch when it differs. Spin counts above
// MaxSpinCount are rejected as invalid.
func Verify(password string, desc *Descriptor) error {
	if desc == nil {
		return fmt.Errorf("%w: nil", ErrInvalidDescriptor)
	}
	if desc.AlgorithmName != AlgorithmSHA512 {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidDescriptor, desc.AlgorithmName)
	}
	salt, err := base64.StdEncoding.DecodeString(desc.SaltValue)
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrInvalidDescriptor, err)
	}
	want, err := base64.StdEncoding.DecodeString(desc.HashValue)
	if err != nil {
		return fmt.Errorf("%w: hash: %v", ErrInvalidDescriptor, err)
	}
	spin, err := strconv.ParseUint(desc.SpinCount, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: spin count: %v", ErrInvalidDescriptor, err)
	}
	if spin > MaxSpinCount {
		return fmt.Errorf("%w: spin count %d exceeds %d", ErrInvalidDescriptor, spin, MaxSpinCount)
	}

	got, err := hashChain(password, salt, uint32(spin))
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return ErrPasswordMismatch
	}
	return nil
}

func derive(password string, salt []byte, spin uint32) (*Descriptor, error) {
	sum, err := hashChain(password, salt, spin)
	if err != nil {
		return nil, err
	}
	return &Descriptor{
		AlgorithmName: AlgorithmSHA512,
		HashValue:     base64.StdEncoding.EncodeToString(sum),
		SaltValue:     base64.StdEncoding.EncodeToString(salt),
		SpinCount:     strconv.FormatUint(uint64(spin), 10),
	}, nil
}

func hashChain(password string, salt []byte, spin uint32) ([]byte, error) {
	if !crypto.SHA512.Available() {
		return nil, fmt.Errorf("%w: %s digest not linked", ErrCryptoUnavailable, AlgorithmSHA512)
	}
	pw, err := encodeUTF16LE(password)
	if err != nil {
		return nil, err
	}

	h := crypto.SHA512.New()
	h.Write(salt)
	h.Write(pw)
	sum := h.Sum(nil)

	var counter [4]byte
	for i := uint32(0); i < spin; i++ {
		binary.LittleEndian.PutUint32(counter[:], i)
		h.Reset()
		h.Write(sum)
		h.Write(counter[:])
		sum = h.Sum(sum[:0])
	}
	return sum, nil
}

// encodeUTF16LE encodes s as little-endian UTF-16 code units without a
// BOM. Runes outside the BMP become surrogate pairs.
func encodeUTF16LE(s string) ([]byte, error) {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode password: %w", err)
	}
	return b, nil
}
