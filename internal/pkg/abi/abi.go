// Package abi encodes and decodes the subset of the Solidity ABI used when
// inspecting and rewriting wallet calls: selectors, address and uint256
// words, dynamic bytes, dynamic address/bytes arrays, and the call/result
// tuple arrays of the Multicall3 aggregator.
//
// Every decoder is total over its input. Call data reaching this package
// comes from untrusted clients, so malformed or truncated payloads yield a
// false flag or an empty slice instead of an error or a panic.
package abi

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

const (
	// WordSize is the size of an ABI word in bytes.
	WordSize = 32

	// SelectorSize is the size of a function selector in bytes.
	SelectorSize = 4
)

// Selector is the first four bytes of the keccak256 hash of a function signature.
type Selector [SelectorSize]byte

// Well-known selectors recognized by the call classifier.
var (
	// ApproveSelector identifies approve(address,uint256).
	ApproveSelector = MustSelector("0x095ea7b3")

	// AllowanceSelector identifies allowance(address,address).
	AllowanceSelector = MustSelector("0xdd62ed3e")

	// Aggregate3Selector identifies Multicall3 aggregate3((address,bool,bytes)[]).
	Aggregate3Selector = MustSelector("0x82ad56cb")

	// TryAggregateSelector identifies Multicall3 tryAggregate(bool,(address,bytes)[]).
	TryAggregateSelector = MustSelector("0xbce38bd7")
)

// SelectorFromBytes returns the selector at the start of b.
// It reports false when b is shorter than a selector.
func SelectorFromBytes(b []byte) (Selector, bool) {
	var s Selector
	if len(b) < SelectorSize {
		return s, false
	}

	copy(s[:], b[:SelectorSize])
	return s, true
}

// MustSelector parses a 0x-prefixed hex selector and panics if it is invalid.
// It is meant for package-level constants.
func MustSelector(hex string) Selector {
	s, ok := SelectorFromBytes(hexutil.MustDecode(hex))
	if !ok {
		panic("abi: selector too short: " + hex)
	}
	return s
}

// Matches reports whether data starts with the selector.
func (s Selector) Matches(data []byte) bool {
	return len(data) >= SelectorSize && bytes.Equal(data[:SelectorSize], s[:])
}

// String returns the 0x-prefixed hex form of the selector.
func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

// Call is a single sub-call of an aggregator payload.
type Call struct {
	Target       common.Address
	AllowFailure bool // only meaningful for aggregate3 entries
	CallData     []byte
}

// Result is a single entry of an aggregator's (bool,bytes)[] return value.
type Result struct {
	Success    bool
	ReturnData []byte
}

// wordAt returns the 32-byte word starting at offset, or false when the word
// does not fit in data.
func wordAt(data []byte, offset int) ([]byte, bool) {
	if offset < 0 || offset > len(data)-WordSize {
		return nil, false
	}
	return data[offset : offset+WordSize], true
}

// intAt reads the word at offset as an offset or length. Values larger than
// len(data) cannot describe anything inside data and are rejected, which
// also keeps later offset arithmetic far from overflowing.
func intAt(data []byte, offset int) (int, bool) {
	w, ok := wordAt(data, offset)
	if !ok {
		return 0, false
	}

	var v uint256.Int
	v.SetBytes32(w)
	if !v.IsUint64() || v.Uint64() > uint64(len(data)) {
		return 0, false
	}
	return int(v.Uint64()), true
}

// boolAt reads the word at offset as a bool. Any non-zero word is true.
func boolAt(data []byte, offset int) (bool, bool) {
	w, ok := wordAt(data, offset)
	if !ok {
		return false, false
	}
	return !bytes.Equal(w, make([]byte, WordSize)), true
}

// argOffset returns the absolute offset of the argIndex-th head word of call data.
func argOffset(argIndex int) int {
	return SelectorSize + argIndex*WordSize
}

// padded rounds n up to the next multiple of WordSize.
func padded(n int) int {
	return (n + WordSize - 1) / WordSize * WordSize
}
