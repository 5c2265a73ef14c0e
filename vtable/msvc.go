// Package vtable implements a best-effort MSVC RTTI vtable locator built
// entirely on top of sigscan.Find/FindAll. It is experimental, deliberately
// narrow (MSVC only — the GNU Itanium C++ ABI's vtable layout is a
// different, unimplemented non-goal here), and has no dependency the core
// engine doesn't already have: it sits atop sigscan the way a caller's
// own code would, not as a privileged extension of it.
package vtable

import (
	"fmt"

	"github.com/coregx/sigscan"
	"github.com/coregx/sigscan/internal/conv"
)

// Section is the byte range vtable resolution scans, together with its
// load base so RVA-style fields (CompleteObjectLocator's pTypeDescriptor,
// pSelf) can be resolved to absolute offsets within it.
type Section struct {
	// Data is the section's raw bytes (typically .rdata).
	Data []byte
	// Base is Data[0]'s offset from the module's load address, in
	// bytes, used to convert the module-relative RVAs embedded in
	// CompleteObjectLocator records back into offsets into Data.
	Base uint32
}

// FindMSVC locates the vtable (the "vftable", in MSVC's own naming) for
// the C++ class named className, searching typeInfo (typically .rdata,
// where the compiler places RTTI) for its structures and data (typically
// .rdata or .data, where the vtable pointer itself lives).
//
// The walk mirrors how a debugger resolves RTTI by hand:
//  1. find the class's mangled TypeDescriptor name string
//  2. find a CompleteObjectLocator whose pTypeDescriptor RVA points back
//     at that TypeDescriptor
//  3. find a pointer to that locator immediately preceding a vtable
//     (MSVC lays out object_locator_ptr at vftable[-1])
func FindMSVC(className string, typeInfo, data Section) (sigscan.Result, error) {
	nameSig := mangledNameSignature(className)

	nameMatch := sigscan.Find(typeInfo.Data, nameSig, sigscan.X1, sigscan.HintNone)
	if !nameMatch.Found() {
		return sigscan.Result{}, fmt.Errorf("vtable: TypeDescriptor for %q not found", className)
	}
	nameOffset, _ := nameMatch.Offset()
	nameRVA := typeInfo.Base + conv.IntToUint32(nameOffset)

	// TypeDescriptor itself starts some bytes before its mangled name
	// (vtable ptr + spare + name[]); the locator points at the
	// TypeDescriptor's start, so walk back to find it the same way the
	// original RTTI layout does: pTypeDescriptor in a
	// CompleteObjectLocator is an RVA to the TypeDescriptor struct, and
	// name[] is always the last field, so TypeDescriptor's RVA equals
	// the name's RVA minus the two leading pointer-sized fields plus
	// the spare int — a fixed 2*8+4 = 20 bytes on 64-bit MSVC.
	const typeDescriptorHeaderSize = 2*8 + 4
	typeDescriptorRVA := nameRVA - typeDescriptorHeaderSize

	locatorSig := completeObjectLocatorSignature(typeDescriptorRVA)
	locatorMatch := sigscan.Find(typeInfo.Data, locatorSig, sigscan.X1, sigscan.HintNone)
	if !locatorMatch.Found() {
		return sigscan.Result{}, fmt.Errorf("vtable: CompleteObjectLocator for %q not found", className)
	}
	locatorOffset, _ := locatorMatch.Offset()
	locatorRVA := typeInfo.Base + conv.IntToUint32(locatorOffset)

	ptrSig := pointerToRVASignature(locatorRVA)
	var result sigscan.Result
	found := false
	sigscan.FindAllFunc(data.Data, ptrSig, sigscan.X1, sigscan.HintNone, func(r sigscan.Result) bool {
		result = r
		found = true
		return false
	})
	if !found {
		return sigscan.Result{}, fmt.Errorf("vtable: vftable for %q not found", className)
	}
	// The match itself lands on the locator pointer occupying
	// vftable[-1]; the vtable proper — and its first virtual function
	// pointer — is the 4 bytes immediately following, i.e.
	// result.Bytes()[4:].
	return result, nil
}

// mangledNameSignature builds the literal-byte signature for an MSVC
// mangled TypeDescriptor name (".?AVClassName@@" for a class, with no
// wildcards — the name is compared verbatim).
func mangledNameSignature(className string) sigscan.Signature {
	mangled := ".?AV" + className + "@@"
	b := []byte(mangled)
	sig := make(sigscan.Signature, len(b))
	for i, c := range b {
		sig[i] = sigscan.Byte(c)
	}
	return sig
}

// completeObjectLocatorSignature builds a signature matching a
// CompleteObjectLocator struct whose pTypeDescriptor field equals rva,
// wildcarding every other field (signature, offset, cdOffset, pClassDescriptor,
// pSelf): only the field that ties the locator back to its
// TypeDescriptor is checked.
func completeObjectLocatorSignature(rva uint32) sigscan.Signature {
	sig := make(sigscan.Signature, 0, 24)
	for i := 0; i < 12; i++ {
		sig = append(sig, sigscan.Wildcard())
	}
	sig = append(sig, littleEndianBytes(rva)...)
	for i := 0; i < 8; i++ {
		sig = append(sig, sigscan.Wildcard())
	}
	return sig
}

// pointerToRVASignature builds a 4-byte literal signature matching the
// little-endian RVA of a CompleteObjectLocator, used to find a
// vftable[-1] locator pointer by its own RVA within the module's data
// section.
func pointerToRVASignature(rva uint32) sigscan.Signature {
	return littleEndianBytes(rva)
}

func littleEndianBytes(v uint32) sigscan.Signature {
	b := []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	sig := make(sigscan.Signature, len(b))
	for i, c := range b {
		sig[i] = sigscan.Byte(c)
	}
	return sig
}

