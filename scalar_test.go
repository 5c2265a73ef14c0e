package sigscan

import "testing"

func sig(bytes ...int) Signature {
	s := make(Signature, len(bytes))
	for i, b := range bytes {
		if b < 0 {
			s[i] = Wildcard()
		} else {
			s[i] = Byte(byte(b))
		}
	}
	return s
}

func TestFastFirstX1(t *testing.T) {
	data := []byte{0x00, 0x48, 0x8B, 0x05, 0x11, 0x22, 0x33, 0x44, 0x90}
	tests := []struct {
		name    string
		sig     Signature
		wantPos int
		wantOK  bool
	}{
		{"exact match", sig(0x48, 0x8B, 0x05), 1, true},
		{"wildcard tail", sig(0x48, -1, 0x05), 1, true},
		{"no match", sig(0xAA, 0xBB), 0, false},
		{"too long", sig(0x48, 0x8B, 0x05, 0x11, 0x22, 0x33, 0x44, 0x90, 0x99), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fastFirstX1(data, tt.sig)
			if r.Found() != tt.wantOK {
				t.Fatalf("Found() = %v, want %v", r.Found(), tt.wantOK)
			}
			if tt.wantOK {
				if pos, _ := r.Offset(); pos != tt.wantPos {
					t.Errorf("Offset() = %d, want %d", pos, tt.wantPos)
				}
			}
		})
	}
}

func TestFastFirstX1SkipsFalsePositive(t *testing.T) {
	// two candidate first-bytes; only the second admits a full match.
	data := []byte{0x48, 0x00, 0x48, 0x8B}
	r := fastFirstX1(data, sig(0x48, 0x8B))
	if !r.Found() {
		t.Fatalf("expected a match")
	}
	if pos, _ := r.Offset(); pos != 2 {
		t.Errorf("Offset() = %d, want 2", pos)
	}
}

func TestFastFirstX16OnlyAlignedPositions(t *testing.T) {
	data := make([]byte, 64)
	base := baseAddr(data)
	// place the pattern at an address one byte off the nearest 16-boundary
	off := alignedIndex(base, X16, 0, len(data)) + 1
	data[off], data[off+1] = 0x48, 0x8B

	r := fastFirstX16(data, sig(0x48, 0x8B))
	if r.Found() {
		t.Errorf("fastFirstX16 matched at an unaligned offset %d", off)
	}
}

func TestFastFirstX16MatchesAlignedPosition(t *testing.T) {
	data := make([]byte, 64)
	base := baseAddr(data)
	off := alignedIndex(base, X16, 0, len(data))
	if off < 0 || off+2 > len(data) {
		t.Skip("no aligned offset available in test buffer")
	}
	data[off], data[off+1] = 0x48, 0x8B

	r := fastFirstX16(data, sig(0x48, 0x8B))
	if !r.Found() {
		t.Fatalf("expected a match at aligned offset %d", off)
	}
	if pos, _ := r.Offset(); pos != off {
		t.Errorf("Offset() = %d, want %d", pos, off)
	}
}

func TestFastFirstRangeDispatch(t *testing.T) {
	data := []byte{0x11, 0x22, 0x33, 0x44}
	if r := fastFirstRange(data, sig(0x22), X1, 0, len(data)); !r.Found() {
		t.Errorf("X1 fastFirstRange should find 0x22")
	}
}
