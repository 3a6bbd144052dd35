package archive

import (
	"hash/crc32"
	"testing"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x00}},
		{"ascii", []byte("hello world")},
		{"binary", []byte{0xff, 0x00, 0xab, 0xcd, 0x12}},
	}

	for _, tt := range tests {
		got := Checksum(tt.data)
		want := crc32.ChecksumIEEE(tt.data)
		if got != want {
			t.Errorf("Checksum(%s) = %#08x, want %#08x", tt.name, got, want)
		}
	}
}

func TestChecksumEmpty(t *testing.T) {
	if got := Checksum(nil); got != 0 {
		t.Errorf("Checksum(nil) = %#08x, want 0", got)
	}
	if got := Checksum([]byte{}); got != 0 {
		t.Errorf("Checksum(empty) = %#08x, want 0", got)
	}
}

func TestChecksumDeterministic(t *testing.T) {
	data := []byte("the same input always yields the same output")
	first := Checksum(data)
	for i := 0; i < 10; i++ {
		if got := Checksum(data); got != first {
			t.Fatalf("Checksum not deterministic: %#08x != %#08x", got, first)
		}
	}
}
