package sigscan

import "testing"

// S1: RIP-relative displacement resolution on top of a concrete match.
// Rel computes result + displacement + offset + 4 as an index back into
// the same scanned range, so — unlike the original's unbounded raw
// pointer — the displacement here must actually land inside data; this
// test picks a small one to demonstrate the arithmetic rather than the
// spec example's literal out-of-range constant.
func TestFindRelDisplacement(t *testing.T) {
	data := make([]byte, 20)
	copy(data, []byte{0x48, 0x8B, 0x05})
	const disp = int32(5) // target = 0 + 5 + 3 + 4 = 12
	data[3], data[4], data[5], data[6] = byte(disp), byte(disp>>8), byte(disp>>16), byte(disp>>24)
	data[7] = 0x90
	data[12] = 0xCC

	s := Signature{Byte(0x48), Byte(0x8B), Byte(0x05), Wildcard(), Wildcard(), Wildcard(), Wildcard(), Byte(0x90)}

	r := Find(data, s, X1, HintNone)
	if !r.Found() {
		t.Fatalf("expected a match")
	}
	if pos, _ := r.Offset(); pos != 0 {
		t.Fatalf("Offset() = %d, want 0", pos)
	}

	rel := r.Rel(3)
	if !rel.Found() {
		t.Fatalf("Rel(3) not found")
	}
	if pos, _ := rel.Offset(); pos != 12 {
		t.Errorf("Rel(3).Offset() = %d, want 12", pos)
	}
	if rel.Bytes()[0] != 0xCC {
		t.Errorf("Rel(3) landed on the wrong byte")
	}
}

// S2: find-all over non-overlapping occurrences.
func TestFindAllNonOverlapping(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0xAA, 0xBB, 0xCC, 0x00, 0xAA, 0xBB, 0xCC}
	s := Signature{Byte(0xAA), Byte(0xBB), Byte(0xCC)}

	got := FindAll(data, s, X1, HintNone)
	want := []int{3, 7}
	if len(got) != len(want) {
		t.Fatalf("FindAll returned %d matches, want %d", len(got), len(want))
	}
	for i, r := range got {
		pos, _ := r.Offset()
		if pos != want[i] {
			t.Errorf("match %d: Offset() = %d, want %d", i, pos, want[i])
		}
	}
}

// S2-overlap: find-all must resume at pos + stride, not pos + len(sig),
// so a self-overlapping pattern reports every overlapping occurrence
// rather than silently skipping the ones len(sig)-based resume would
// step over.
func TestFindAllOverlapping(t *testing.T) {
	data := []byte{0x90, 0x90, 0x90, 0x90}
	s := Signature{Byte(0x90), Byte(0x90)}

	got := FindAll(data, s, X1, HintNone)
	want := []int{0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("FindAll returned %d matches, want %d: %v", len(got), len(want), got)
	}
	for i, r := range got {
		pos, _ := r.Offset()
		if pos != want[i] {
			t.Errorf("match %d: Offset() = %d, want %d", i, pos, want[i])
		}
	}
}

// S4: signature longer than the scanned range.
func TestFindRangeShorterThanSignature(t *testing.T) {
	data := []byte{0xAA}
	s := Signature{Byte(0xAA), Byte(0xAA)}
	if r := Find(data, s, X1, HintNone); r.Found() {
		t.Errorf("expected no match: range shorter than signature")
	}
}

// S5: leading wildcards restore the original offset on match.
func TestFindRestoresTruncationOffset(t *testing.T) {
	data := []byte{0x11, 0x22, 0x90}
	s := Signature{Wildcard(), Wildcard(), Byte(0x90)}
	r := Find(data, s, X1, HintNone)
	if !r.Found() {
		t.Fatalf("expected a match")
	}
	if pos, _ := r.Offset(); pos != 0 {
		t.Errorf("Offset() = %d, want 0", pos)
	}
}

// S6-scale: a single planted signature inside a large random-looking
// buffer is found by Find through whichever matcher dispatch selects on
// this host (SIMD-versus-scalar equivalence is checked in
// simdmatch_test.go).
func TestFindLargeBufferSingleOccurrence(t *testing.T) {
	const size = 1 << 16
	const plantAt = 40003
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*2654435761 + 17)
	}
	pattern := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C}
	copy(data[plantAt:], pattern)

	s := make(Signature, len(pattern))
	for i, b := range pattern {
		s[i] = Byte(b)
	}

	r := Find(data, s, X1, HintNone)
	if !r.Found() {
		t.Fatalf("expected a match")
	}
	if pos, _ := r.Offset(); pos != plantAt {
		t.Errorf("Offset() = %d, want %d", pos, plantAt)
	}
}

func TestFindAllFuncStopsEarly(t *testing.T) {
	data := []byte{0xAA, 0x00, 0xAA, 0x00, 0xAA}
	s := Signature{Byte(0xAA)}

	var seen []int
	FindAllFunc(data, s, X1, HintNone, func(r Result) bool {
		pos, _ := r.Offset()
		seen = append(seen, pos)
		return len(seen) < 2
	})
	if len(seen) != 2 {
		t.Fatalf("expected exactly 2 matches before stopping, got %v", seen)
	}
	if seen[0] != 0 || seen[1] != 2 {
		t.Errorf("seen = %v, want [0 2]", seen)
	}
}

type fakeSection struct{ b []byte }

func (f fakeSection) Bytes() []byte { return f.b }

func TestFindInSection(t *testing.T) {
	sec := fakeSection{b: []byte{0x00, 0xCA, 0xFE, 0x00}}
	r := FindInSection(sec, Signature{Byte(0xCA), Byte(0xFE)}, X1, HintNone)
	if !r.Found() {
		t.Fatalf("expected a match")
	}
	if pos, _ := r.Offset(); pos != 1 {
		t.Errorf("Offset() = %d, want 1", pos)
	}
}

func TestFindEmptySignature(t *testing.T) {
	if r := Find([]byte{1, 2, 3}, Signature{}, X1, HintNone); r.Found() {
		t.Errorf("Find with empty signature should never match")
	}
}
