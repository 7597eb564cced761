package protect

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"math/bits"
	"testing"
	"time"
)

// fixedSalt is 00 01 02 ... 0f.
var fixedSalt = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

func TestDeriveWithSalt_KnownVectors(t *testing.T) {
	tests := []struct {
		password string
		hash     string
	}{
		{"password", "x01qKaF9y9cQwPxHrE46zKhOLAHXLgmWjpZRPwqjkl6tpT1Lq9JXlHzPvHxsy/q0gWkWsUumW+mgF2sVqd4VXQ=="},
		{"", "DnMg4U4XgCjdcNNBk0U+olKUJPUZ0Uehj8h3aHUcrgjQnjawFkQup9VH6GMSacdqrxL+fdrHtJLsCyCgYjwcew=="},
		{"pässwörd😀", "Lvs/iti0v6om0MxbplRaP3BuUvSJlesd83oAOaX7umWZQcBzaA//UrwlCjyw1qkyzX/QI3L52cj73JZrpV5HKw=="},
	}

	for _, tt := range tests {
		desc, err := DeriveWithSalt(tt.password, fixedSalt)
		if err != nil {
			t.Fatalf("DeriveWithSalt(%q) error: %v", tt.password, err)
		}
		if desc.HashValue != tt.hash {
			t.Errorf("DeriveWithSalt(%q).HashValue = %q, want %q", tt.password, desc.HashValue, tt.hash)
		}
		if desc.SaltValue != "AAECAwQFBgcICQoLDA0ODw==" {
			t.Errorf("SaltValue = %q", desc.SaltValue)
		}
		if desc.AlgorithmName != "SHA-512" {
			t.Errorf("AlgorithmName = %q, want SHA-512", desc.AlgorithmName)
		}
		if desc.SpinCount != "100000" {
			t.Errorf("SpinCount = %q, want 100000", desc.SpinCount)
		}
	}
}

func TestHashChain_ShortSpin(t *testing.T) {
	sum, err := hashChain("password", fixedSalt, 3)
	if err != nil {
		t.Fatalf("hashChain() error: %v", err)
	}
	want := "9FUf5R87MDf6BvnSiy+smBNacRMIzbTQtV7kxGz2J1QZQU5w6s8ZeUuWAHSeN650PKzpyBdcHBiT3GWQ37J9Rw=="
	if got := base64.StdEncoding.EncodeToString(sum); got != want {
		t.Errorf("hashChain(spin=3) = %q, want %q", got, want)
	}
}

func TestDeriveWithSalt_Deterministic(t *testing.T) {
	a, err := DeriveWithSalt("secret", fixedSalt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := DeriveWithSalt("secret", fixedSalt)
	if err != nil {
		t.Fatal(err)
	}
	if *a != *b {
		t.Errorf("same password and salt gave %+v and %+v", a, b)
	}
}

func TestHashChain_Avalanche(t *testing.T) {
	base, err := hashChain("password", fixedSalt, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// "password" with the low bit of each character flipped in turn.
	src := []byte("password")
	total := 0
	for i := range src {
		flipped := bytes.Clone(src)
		flipped[i] ^= 1
		sum, err := hashChain(string(flipped), fixedSalt, 1000)
		if err != nil {
			t.Fatal(err)
		}
		diff := 0
		for j := range sum {
			diff += bits.OnesCount8(sum[j] ^ base[j])
		}
		// 512 output bits, expect about half to change.
		if diff < 180 || diff > 332 {
			t.Errorf("flip at %d changed %d bits, want roughly 256", i, diff)
		}
		total += diff
	}
	if mean := total / len(src); mean < 220 || mean > 292 {
		t.Errorf("mean changed bits = %d, want roughly 256", mean)
	}
}

func TestDerive_RandomSalt(t *testing.T) {
	a, err := Derive("password")
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	b, err := Derive("password")
	if err != nil {
		t.Fatalf("Derive() error: %v", err)
	}
	if a.SaltValue == b.SaltValue {
		t.Error("two derivations should use different salts")
	}
	if a.HashValue == b.HashValue {
		t.Error("different salts should give different hashes")
	}
	salt, err := base64.StdEncoding.DecodeString(a.SaltValue)
	if err != nil {
		t.Fatal(err)
	}
	if len(salt) != SaltSize {
		t.Errorf("salt length = %d, want %d", len(salt), SaltSize)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestDeriver_CryptoUnavailable(t *testing.T) {
	d := Deriver{Rand: failingReader{}}
	_, err := d.Derive("password")
	if !errors.Is(err, ErrCryptoUnavailable) {
		t.Errorf("Derive() error = %v, want ErrCryptoUnavailable", err)
	}
}

func TestDeriver_InjectedSalt(t *testing.T) {
	d := Deriver{Rand: bytes.NewReader(fixedSalt)}
	desc, err := d.Derive("password")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := DeriveWithSalt("password", fixedSalt)
	if *desc != *want {
		t.Errorf("Derive() = %+v, want %+v", desc, want)
	}
}

func TestVerify(t *testing.T) {
	desc, err := DeriveWithSalt("letmein", fixedSalt)
	if err != nil {
		t.Fatal(err)
	}

	if err := Verify("letmein", desc); err != nil {
		t.Errorf("Verify(correct) error: %v", err)
	}
	if err := Verify("letmeout", desc); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("Verify(wrong) error = %v, want ErrPasswordMismatch", err)
	}
}

func TestVerify_InvalidDescriptor(t *testing.T) {
	valid, _ := derive("x", fixedSalt, 1)
	tests := []struct {
		name   string
		mutate func(d *Descriptor)
	}{
		{"algorithm", func(d *Descriptor) { d.AlgorithmName = "SHA-1" }},
		{"salt", func(d *Descriptor) { d.SaltValue = "!!" }},
		{"hash", func(d *Descriptor) { d.HashValue = "!!" }},
		{"spin", func(d *Descriptor) { d.SpinCount = "lots" }},
		{"spin above limit", func(d *Descriptor) { d.SpinCount = "4294967295" }},
		{"spin just above limit", func(d *Descriptor) { d.SpinCount = "1000001" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid.Clone()
			tt.mutate(d)
			if err := Verify("x", d); !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Verify() error = %v, want ErrInvalidDescriptor", err)
			}
		})
	}

	if err := Verify("x", nil); !errors.Is(err, ErrInvalidDescriptor) {
		t.Errorf("Verify(nil) error = %v, want ErrInvalidDescriptor", err)
	}
}

func TestVerify_HonorsSpinCount(t *testing.T) {
	desc, err := derive("quick", fixedSalt, 10)
	if err != nil {
		t.Fatal(err)
	}
	if desc.SpinCount != "10" {
		t.Fatalf("SpinCount = %q", desc.SpinCount)
	}
	if err := Verify("quick", desc); err != nil {
		t.Errorf("Verify() error: %v", err)
	}
}

// blockingReader never returns, simulating a stalled entropy source.
type blockingReader struct{ release chan struct{} }

func (r blockingReader) Read(p []byte) (int, error) {
	<-r.release
	return 0, errors.New("released")
}

func TestDeriveContext_Canceled(t *testing.T) {
	r := blockingReader{release: make(chan struct{})}
	defer close(r.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Deriver{Rand: r}.DeriveContext(ctx, "password")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("DeriveContext() error = %v, want DeadlineExceeded", err)
	}
}

func TestDeriveAsync(t *testing.T) {
	res := <-Deriver{Rand: bytes.NewReader(fixedSalt)}.DeriveAsync("password")
	if res.Err != nil {
		t.Fatalf("DeriveAsync() error: %v", res.Err)
	}
	want, _ := DeriveWithSalt("password", fixedSalt)
	if *res.Descriptor != *want {
		t.Errorf("DeriveAsync() = %+v, want %+v", res.Descriptor, want)
	}
}

func TestDeriveAll(t *testing.T) {
	passwords := map[string]string{"Summary": "a", "Data": "b", "": "c"}
	got, err := Deriver{}.DeriveAll(context.Background(), passwords)
	if err != nil {
		t.Fatalf("DeriveAll() error: %v", err)
	}
	if len(got) != len(passwords) {
		t.Fatalf("DeriveAll() returned %d descriptors, want %d", len(got), len(passwords))
	}
	for label, pw := range passwords {
		if err := Verify(pw, got[label]); err != nil {
			t.Errorf("Verify(%q) for %q: %v", pw, label, err)
		}
	}
}

func TestDeriveAll_Error(t *testing.T) {
	_, err := Deriver{Rand: failingReader{}}.DeriveAll(context.Background(), map[string]string{"a": "x"})
	if !errors.Is(err, ErrCryptoUnavailable) {
		t.Errorf("DeriveAll() error = %v, want ErrCryptoUnavailable", err)
	}
}

func TestDescriptor_Clone(t *testing.T) {
	var nilDesc *Descriptor
	if nilDesc.Clone() != nil {
		t.Error("nil.Clone() should be nil")
	}
	d := &Descriptor{HashValue: "h"}
	cp := d.Clone()
	cp.HashValue = "changed"
	if d.HashValue != "h" {
		t.Error("Clone() should not alias")
	}
}
