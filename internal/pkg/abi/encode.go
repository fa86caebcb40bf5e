package abi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// EncodeUint256 encodes v as a big-endian 32-byte word.
func EncodeUint256(v *uint256.Int) []byte {
	w := v.Bytes32()
	return w[:]
}

// EncodeAddress encodes a as a 32-byte word, right-aligned.
func EncodeAddress(a common.Address) []byte {
	return common.LeftPadBytes(a.Bytes(), WordSize)
}

// EncodeBool encodes b as a 32-byte word holding 0 or 1.
func EncodeBool(b bool) []byte {
	if b {
		return encodeInt(1)
	}
	return encodeInt(0)
}

// EncodeDynamicBytes encodes v as a length word followed by v right-padded
// with zeros to a 32-byte boundary.
func EncodeDynamicBytes(v []byte) []byte {
	out := make([]byte, 0, WordSize+padded(len(v)))
	out = append(out, encodeInt(len(v))...)
	out = append(out, v...)
	return append(out, make([]byte, padded(len(v))-len(v))...)
}

// EncodeAddressArray encodes an address[]: a length word then one word per element.
func EncodeAddressArray(values []common.Address) []byte {
	out := make([]byte, 0, WordSize*(len(values)+1))
	out = append(out, encodeInt(len(values))...)
	for _, v := range values {
		out = append(out, EncodeAddress(v)...)
	}
	return out
}

// EncodeBytesArray encodes a bytes[]: a length word, one offset word per
// element relative to the start of the offset table, then each element's
// dynamic bytes encoding in order.
func EncodeBytesArray(values [][]byte) []byte {
	return encodeTupleArray(len(values), func(i int) []byte {
		return EncodeDynamicBytes(values[i])
	})
}

// EncodeCall3Array encodes an (address,bool,bytes)[] for aggregate3.
func EncodeCall3Array(calls []Call) []byte {
	return encodeTupleArray(len(calls), func(i int) []byte {
		c := calls[i]

		out := make([]byte, 0, 3*WordSize)
		out = append(out, EncodeAddress(c.Target)...)
		out = append(out, EncodeBool(c.AllowFailure)...)
		out = append(out, encodeInt(3*WordSize)...)
		return append(out, EncodeDynamicBytes(c.CallData)...)
	})
}

// EncodeCallArray encodes an (address,bytes)[] for tryAggregate.
func EncodeCallArray(calls []Call) []byte {
	return encodeTupleArray(len(calls), func(i int) []byte {
		c := calls[i]

		out := make([]byte, 0, 2*WordSize)
		out = append(out, EncodeAddress(c.Target)...)
		out = append(out, encodeInt(2*WordSize)...)
		return append(out, EncodeDynamicBytes(c.CallData)...)
	})
}

// EncodeResultArray encodes the (bool,bytes)[] return value of aggregate3
// or tryAggregate, including the leading offset word of the return tuple.
func EncodeResultArray(results []Result) []byte {
	array := encodeTupleArray(len(results), func(i int) []byte {
		r := results[i]

		out := make([]byte, 0, 2*WordSize)
		out = append(out, EncodeBool(r.Success)...)
		out = append(out, encodeInt(2*WordSize)...)
		return append(out, EncodeDynamicBytes(r.ReturnData)...)
	})

	return append(encodeInt(WordSize), array...)
}

// EncodeAggregate3Call encodes a full aggregate3((address,bool,bytes)[]) call.
func EncodeAggregate3Call(calls []Call) []byte {
	out := append([]byte{}, Aggregate3Selector[:]...)
	out = append(out, encodeInt(WordSize)...)
	return append(out, EncodeCall3Array(calls)...)
}

// EncodeTryAggregateCall encodes a full tryAggregate(bool,(address,bytes)[]) call.
func EncodeTryAggregateCall(requireSuccess bool, calls []Call) []byte {
	out := append([]byte{}, TryAggregateSelector[:]...)
	out = append(out, EncodeBool(requireSuccess)...)
	out = append(out, encodeInt(2*WordSize)...)
	return append(out, EncodeCallArray(calls)...)
}

// EncodeExecuteCall encodes a call with signature (address[],bytes[]) under
// the given selector: the selector, two head words holding the offsets of
// both arrays relative to the argument block, then the encoded arrays.
//
// targets and callDatas must have the same length; the caller enforces it.
func EncodeExecuteCall(selector Selector, targets []common.Address, callDatas [][]byte) []byte {
	encodedTargets := EncodeAddressArray(targets)
	encodedCallDatas := EncodeBytesArray(callDatas)

	out := make([]byte, 0, SelectorSize+2*WordSize+len(encodedTargets)+len(encodedCallDatas))
	out = append(out, selector[:]...)
	out = append(out, encodeInt(2*WordSize)...)
	out = append(out, encodeInt(2*WordSize+len(encodedTargets))...)
	out = append(out, encodedTargets...)
	return append(out, encodedCallDatas...)
}

// encodeInt encodes a non-negative length or offset as a word.
func encodeInt(n int) []byte {
	return EncodeUint256(uint256.NewInt(uint64(n)))
}

// encodeTupleArray lays out n dynamic elements: a length word, the offset
// table (offsets relative to its own start) and the element bodies.
func encodeTupleArray(n int, element func(i int) []byte) []byte {
	bodies := make([][]byte, n)
	size := 0
	for i := range bodies {
		bodies[i] = element(i)
		size += len(bodies[i])
	}

	out := make([]byte, 0, WordSize*(n+1)+size)
	out = append(out, encodeInt(n)...)

	offset := n * WordSize
	for _, body := range bodies {
		out = append(out, encodeInt(offset)...)
		offset += len(body)
	}

	for _, body := range bodies {
		out = append(out, body...)
	}
	return out
}
