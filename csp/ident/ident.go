// Package ident builds the deterministic 64-bit process fingerprint: fold
// a per-operator scope tag together with the operator's operands into one
// digest.
//
// Two syntactically-equal process expressions must fold to the same id,
// and folding is order-sensitive for individual Add* calls but
// order-independent for the contents of a set or bag.
//
// The digest is BLAKE2b-256 truncated to 64 bits, mixed over a canonical
// CBOR encoding of each piece being folded in, so that two values encoding
// to the same bytes always fold identically.
package ident

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// ID is a 64-bit process or event fingerprint.
type ID uint64

// Scope is the seed tag for one operator. Every operator constructor in the
// process package uses a distinct, stable Scope so that e.g. a prefix
// process and an external-choice process over the same operand id never
// collide by construction.
type Scope string

// canonicalEncoder is shared by every Builder; cbor.Mode is safe for
// concurrent use, so one package-level instance is enough.
var canonicalEncoder cbor.EncMode

func init() {
	opts := cbor.CanonicalEncOptions()
	mode, err := opts.EncMode()
	if err != nil {
		panic("ident: failed to build canonical CBOR encoder: " + err.Error())
	}
	canonicalEncoder = mode
}

// Builder accumulates pieces into a running fingerprint. The zero value is
// not usable; start one with Start.
type Builder struct {
	state [blake2b.Size256]byte
}

// Start begins a new fingerprint seeded from an operator's Scope tag.
func Start(scope Scope) *Builder {
	b := &Builder{}
	b.mix(scope)
	return b
}

// AddID folds a single ID (another process's or event's fingerprint) into
// the running state. Order of AddID/AddName calls is part of the contract:
// folding id1 then id2 differs from folding id2 then id1.
func (b *Builder) AddID(id ID) *Builder {
	b.mix(id)
	return b
}

// AddName folds raw bytes (an event name, a recursion-scope name) into the
// running state.
func (b *Builder) AddName(name []byte) *Builder {
	b.mix(name)
	return b
}

// AddIDSet folds a set of IDs into the running state. The contribution is
// order-independent: permuting ids produces the same fingerprint, because
// member leaves are combined with a commutative XOR-fold before being mixed
// in as a single piece.
func (b *Builder) AddIDSet(ids []ID) *Builder {
	b.mix(setDigest(ids))
	return b
}

// AddWeightedIDSet folds a multiset (id -> multiplicity) into the running
// state, order-independent in the same sense as AddIDSet but sensitive to
// each member's multiplicity (needed for process bags, where P ⫴ P differs
// from P).
func (b *Builder) AddWeightedIDSet(counts map[ID]int) *Builder {
	var leaves [][blake2b.Size256]byte
	for id, count := range counts {
		leaves = append(leaves, leafDigest(struct {
			ID    ID
			Count int
		}{id, count}))
	}
	b.mix(xorFold(leaves))
	return b
}

// Finish returns the fingerprint accumulated so far, truncated to 64 bits.
// Calling Finish does not consume the Builder; further Add* calls are legal
// and will fold on top of the returned value's internal state.
func (b *Builder) Finish() ID {
	return ID(binary.LittleEndian.Uint64(b.state[:8]))
}

// mix folds an arbitrary CBOR-encodable value into the running state by
// hashing state||canonical(value) and replacing state with the digest.
func (b *Builder) mix(piece interface{}) {
	encoded, err := canonicalEncoder.Marshal(piece)
	if err != nil {
		panic("ident: value is not CBOR-encodable: " + err.Error())
	}
	input := make([]byte, 0, len(b.state)+len(encoded))
	input = append(input, b.state[:]...)
	input = append(input, encoded...)
	b.state = blake2b.Sum256(input)
}

// leafDigest is the canonical per-member hash used inside a set or bag
// before the commutative XOR-fold combines them.
func leafDigest(piece interface{}) [blake2b.Size256]byte {
	encoded, err := canonicalEncoder.Marshal(piece)
	if err != nil {
		panic("ident: value is not CBOR-encodable: " + err.Error())
	}
	return blake2b.Sum256(encoded)
}

func setDigest(ids []ID) [blake2b.Size256]byte {
	leaves := make([][blake2b.Size256]byte, len(ids))
	for i, id := range ids {
		leaves[i] = leafDigest(id)
	}
	return xorFold(leaves)
}

func xorFold(leaves [][blake2b.Size256]byte) [blake2b.Size256]byte {
	var acc [blake2b.Size256]byte
	for _, leaf := range leaves {
		for i := range acc {
			acc[i] ^= leaf[i]
		}
	}
	return acc
}

// HashName derives a stable 64-bit id from raw bytes alone; used by the
// event registry, which has no operator scope to seed from.
func HashName(name []byte) ID {
	digest := leafDigest(name)
	return ID(binary.LittleEndian.Uint64(digest[:8]))
}
