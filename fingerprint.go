package fathom

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"reflect"

	"golang.org/x/crypto/blake2b"
)

// Stream tags for the canonical structural encoding. One tag byte per
// shape event keeps distinct shapes from colliding byte-wise (a record
// of two texts never encodes like a sequence of two texts).
const (
	fpScalar byte = iota + 1
	fpText
	fpAbsent
	fpPresent
	fpSequence
	fpMap
	fpRecord
	fpRevisit
	fpOverride
)

// fingerprint digests v's canonical structural encoding with
// BLAKE2b-256 and returns the hex digest.
//
// The encoding is deterministic: scalars contribute their ordinal or
// bit pattern, text its length and bytes, maps their sorted key/value
// pairs, records their fields in declared order. Identities already on
// the recursion path contribute a fixed revisit tag, so cyclic values
// digest in bounded time. A Hash override contributes its result in
// place of the structural descent.
func fingerprint(s *schema, v reflect.Value) string {
	// New256 only fails for an oversized key; unkeyed cannot error.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	fingerprintValue(h, s, v, &soloVisits{})
	return hex.EncodeToString(h.Sum(nil))
}

// fingerprintValue streams one value's encoding into w.
// Digest writers never return errors, so writes go unchecked.
func fingerprintValue(w io.Writer, s *schema, v reflect.Value, vs *soloVisits) {
	if s.hashMethod >= 0 {
		writeTagged(w, fpOverride, v.Method(s.hashMethod).Call(nil)[0].Uint())
		return
	}

	switch s.category {
	case CategoryScalar:
		writeTagged(w, fpScalar, scalarOrdinal(v))

	case CategoryText:
		str := v.String()
		writeTagged(w, fpText, uint64(len(str)))
		io.WriteString(w, str) //nolint:errcheck

	case CategoryReference:
		if v.IsNil() {
			writeTag(w, fpAbsent)
			return
		}
		id, _ := identify(v)
		if vs.enter(id) {
			writeTag(w, fpRevisit)
			return
		}
		defer vs.leave(id)
		writeTag(w, fpPresent)
		fingerprintValue(w, s.elem, v.Elem(), vs)

	case CategorySequence:
		if id, ok := identify(v); ok {
			if vs.enter(id) {
				writeTag(w, fpRevisit)
				return
			}
			defer vs.leave(id)
		}
		writeTagged(w, fpSequence, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			fingerprintValue(w, s.elem, v.Index(i), vs)
		}

	case CategoryMap:
		if id, ok := identify(v); ok {
			if vs.enter(id) {
				writeTag(w, fpRevisit)
				return
			}
			defer vs.leave(id)
		}
		writeTagged(w, fpMap, uint64(v.Len()))
		for _, e := range sortedEntries(s, v) {
			fingerprintValue(w, s.key, e.key, vs)
			fingerprintValue(w, s.val, e.val, vs)
		}

	case CategoryRecord:
		writeTag(w, fpRecord)
		for i := range s.fields {
			f := &s.fields[i]
			if f.policy == policySkip {
				continue
			}
			fingerprintValue(w, f.schema, v.FieldByIndex(f.index), vs)
		}
	}
}

func writeTag(w io.Writer, tag byte) {
	w.Write([]byte{tag}) //nolint:errcheck
}

func writeTagged(w io.Writer, tag byte, n uint64) {
	var buf [9]byte
	buf[0] = tag
	binary.BigEndian.PutUint64(buf[1:], n)
	w.Write(buf[:]) //nolint:errcheck
}
