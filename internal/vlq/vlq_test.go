package vlq

import (
	"bytes"
	"errors"
	"testing"
)

func TestAppend(t *testing.T) {
	tests := []struct {
		n    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x81, 0x00}},
		{0xffff, []byte{0x83, 0xff, 0x7f}},
		{0xffffffff, []byte{0x8f, 0xff, 0xff, 0xff, 0x7f}},
	}
	for _, tt := range tests {
		got := Append(nil, tt.n)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Append(%d) = % x, want % x", tt.n, got, tt.want)
		}
		if l := Len(tt.n); l != len(tt.want) {
			t.Errorf("Len(%d) = %d, want %d", tt.n, l, len(tt.want))
		}
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		src     []byte
		want    uint64
		wantLen int
	}{
		{[]byte{0x00}, 0, 1},
		{[]byte{0x7f}, 127, 1},
		{[]byte{0x81, 0x00}, 128, 2},
		{[]byte{0x83, 0xff, 0x7f}, 0xffff, 3},
	}
	for _, tt := range tests {
		got, n, err := Read(tt.src)
		if err != nil {
			t.Fatalf("Read(% x): unexpected error: %v", tt.src, err)
		}
		if got != tt.want || n != tt.wantLen {
			t.Errorf("Read(% x) = (%d, %d), want (%d, %d)", tt.src, got, n, tt.want, tt.wantLen)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		wantErr error
	}{
		{"empty", nil, ErrTruncated},
		{"truncated", []byte{0x83, 0xff}, ErrTruncated},
		{"leading-continuation-only", []byte{0x80, 0x01}, ErrNotMinimal},
		{"overflow", []byte{0x82, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}, ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Read(tt.src); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Read(% x) error = %v, want %v", tt.src, err, tt.wantErr)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 0xffff, 0xffffffff, ^uint64(0)}
	for _, n := range values {
		b := Append(nil, n)
		got, consumed, err := Read(b)
		if err != nil {
			t.Fatalf("Read(Append(%d)): %v", n, err)
		}
		if got != n || consumed != len(b) {
			t.Errorf("round trip of %d produced (%d, %d consumed of %d)", n, got, consumed, len(b))
		}
	}
}
