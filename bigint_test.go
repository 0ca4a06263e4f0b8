package ber

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestEncodeInteger(t *testing.T) {
	tests := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
	}
	for _, tt := range tests {
		got := encodeInteger(big.NewInt(tt.n))
		if !bytes.Equal(got, tt.want) {
			t.Errorf("encodeInteger(%d) = % x, want % x", tt.n, got, tt.want)
		}
	}
}

func TestEncodeIntegerLarge(t *testing.T) {
	n, ok := new(big.Int).SetString("0102030405060708090a0b0c0d0e0f", 16)
	if !ok {
		t.Fatal("bad literal")
	}
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	got := encodeInteger(n)
	if !bytes.Equal(got, want) {
		t.Errorf("encodeInteger(large) = % x, want % x", got, want)
	}
	neg := new(big.Int).Neg(n)
	gotNeg := encodeInteger(neg)
	decoded, err := decodeInteger(gotNeg)
	if err != nil {
		t.Fatalf("decodeInteger: %v", err)
	}
	if decoded.Cmp(neg) != 0 {
		t.Errorf("round trip of -large = %v, want %v", decoded, neg)
	}
}

func TestDecodeInteger(t *testing.T) {
	tests := []struct {
		content []byte
		want    int64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0xff}, -1},
		{[]byte{0x7f}, 127},
		{[]byte{0x00, 0x80}, 128},
		{[]byte{0x80}, -128},
		{[]byte{0xff, 0x7f}, -129},
	}
	for _, tt := range tests {
		got, err := decodeInteger(tt.content)
		if err != nil {
			t.Fatalf("decodeInteger(% x): unexpected error: %v", tt.content, err)
		}
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("decodeInteger(% x) = %v, want %d", tt.content, got, tt.want)
		}
	}
}

func TestDecodeIntegerNonMinimal(t *testing.T) {
	tests := [][]byte{
		{0x00, 0x01},
		{0xff, 0x80},
		{0x00, 0x00, 0x01},
	}
	for _, content := range tests {
		if _, err := decodeInteger(content); !errors.Is(err, ErrNonMinimal) {
			t.Errorf("decodeInteger(% x) error = %v, want ErrNonMinimal", content, err)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(127),
		big.NewInt(128),
		big.NewInt(-128),
		big.NewInt(-129),
		new(big.Int).Lsh(big.NewInt(1), 120),
		new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 120)),
	}
	for _, n := range values {
		enc := encodeInteger(n)
		got, err := decodeInteger(enc)
		if err != nil {
			t.Fatalf("decodeInteger(encodeInteger(%v)): %v", n, err)
		}
		if got.Cmp(n) != 0 {
			t.Errorf("round trip of %v produced %v", n, got)
		}
	}
}
