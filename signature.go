// Package sigscan implements a byte-pattern ("signature") scan engine:
// an alignment-aware search for short, possibly wildcarded byte sequences
// inside an arbitrary byte range, with SIMD-accelerated matchers selected
// by runtime CPU dispatch and a portable scalar fallback.
//
// The typical caller builds a Signature (directly, or via hatparse.Parse),
// then calls Find or FindAll against a byte slice — most often the memory
// image of a loaded module's section, obtained through the process
// package.
package sigscan

import "fmt"

// Element is a single signature position: either a concrete byte value or
// a wildcard that matches any byte.
type Element struct {
	value    byte
	wildcard bool
}

// Byte returns the concrete Element matching exactly b.
func Byte(b byte) Element {
	return Element{value: b}
}

// Wildcard returns the Element that matches any byte.
func Wildcard() Element {
	return Element{wildcard: true}
}

// IsWildcard reports whether e matches any byte.
func (e Element) IsWildcard() bool {
	return e.wildcard
}

// Value returns the concrete byte value and true, or (0, false) if e is a
// wildcard.
func (e Element) Value() (byte, bool) {
	if e.wildcard {
		return 0, false
	}
	return e.value, true
}

// Matches reports whether e matches the given byte: a wildcard matches
// anything, a concrete Element matches only its own value.
func (e Element) Matches(b byte) bool {
	return e.wildcard || e.value == b
}

func (e Element) String() string {
	if e.wildcard {
		return "??"
	}
	return fmt.Sprintf("%02X", e.value)
}

// Signature is an ordered, non-empty sequence of Elements describing a
// pattern to search for. A Signature built by hand or by hatparse.Parse is
// immutable; every scan operates on a borrowed View of it.
type Signature []Element

// View is a borrowed, non-owning slice of a Signature. Its lifetime must
// not exceed the backing Signature's; nothing in this package mutates a
// View once constructed.
type View = Signature

// String renders the signature in the conventional space-separated
// hex/"??" notation consumed by hatparse.Parse.
func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}

// Equal reports whether s and other are elementwise identical.
func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// truncate strips leading wildcards from sig, returning the number of
// elements removed and the remaining view. The returned view either has a
// concrete first element or is empty.
//
// Invariant: offset + len(view) == len(sig), always — truncate never
// removes a concrete byte.
func truncate(sig View) (offset int, view View) {
	for offset < len(sig) && sig[offset].wildcard {
		offset++
	}
	return offset, sig[offset:]
}

// matchTail reports whether sig[1:] matches mem byte-for-byte, honoring
// wildcards. Callers are responsible for ensuring len(mem) >= len(sig)-1.
func matchTail(sig View, mem []byte) bool {
	for i := 1; i < len(sig); i++ {
		if !sig[i].Matches(mem[i-1]) {
			return false
		}
	}
	return true
}
