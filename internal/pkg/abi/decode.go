package abi

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// DecodeAddress returns the address held in the argIndex-th argument word of
// call data (selector included). It reports false when data is too short.
func DecodeAddress(data []byte, argIndex int) (common.Address, bool) {
	if argIndex < 0 {
		return common.Address{}, false
	}

	w, ok := wordAt(data, argOffset(argIndex))
	if !ok {
		return common.Address{}, false
	}
	return common.BytesToAddress(w[WordSize-common.AddressLength:]), true
}

// DecodeUint256 returns the argIndex-th argument word of call data as an
// unsigned integer. It reports false when data is too short.
func DecodeUint256(data []byte, argIndex int) (*uint256.Int, bool) {
	if argIndex < 0 {
		return nil, false
	}

	w, ok := wordAt(data, argOffset(argIndex))
	if !ok {
		return nil, false
	}
	return new(uint256.Int).SetBytes32(w), true
}

// DecodeOffset returns the argIndex-th argument word of call data interpreted
// as a byte offset into the argument block, converted to an absolute offset
// into data.
func DecodeOffset(data []byte, argIndex int) (int, bool) {
	if argIndex < 0 {
		return 0, false
	}

	off, ok := intAt(data, argOffset(argIndex))
	if !ok {
		return 0, false
	}
	return SelectorSize + off, true
}

// DecodeAddressArray decodes an address[] whose length word sits at
// headOffset. Malformed input yields an empty slice.
func DecodeAddressArray(data []byte, headOffset int) []common.Address {
	n, ok := intAt(data, headOffset)
	if !ok {
		return nil
	}

	start := headOffset + WordSize
	if n > (len(data)-start)/WordSize {
		return nil
	}

	out := make([]common.Address, 0, n)
	for i := 0; i < n; i++ {
		w, _ := wordAt(data, start+i*WordSize)
		out = append(out, common.BytesToAddress(w[WordSize-common.AddressLength:]))
	}
	return out
}

// DecodeBytesArray decodes a bytes[] whose length word sits at headOffset.
// Element offsets are relative to the start of the offset table. Malformed
// input yields an empty slice.
func DecodeBytesArray(data []byte, headOffset int) [][]byte {
	return decodeTupleArray(data, headOffset, decodeDynamicBytes)
}

// DecodeCall3Array decodes an (address,bool,bytes)[] as used by Multicall3
// aggregate3, with the length word at headOffset. Malformed input yields an
// empty slice.
func DecodeCall3Array(data []byte, headOffset int) []Call {
	return decodeTupleArray(data, headOffset, func(data []byte, start int) (Call, bool) {
		target, ok := wordAt(data, start)
		if !ok {
			return Call{}, false
		}

		allowFailure, ok := boolAt(data, start+WordSize)
		if !ok {
			return Call{}, false
		}

		callData, ok := decodeDynamicField(data, start, start+2*WordSize)
		if !ok {
			return Call{}, false
		}

		return Call{
			Target:       common.BytesToAddress(target[WordSize-common.AddressLength:]),
			AllowFailure: allowFailure,
			CallData:     callData,
		}, true
	})
}

// DecodeCallArray decodes an (address,bytes)[] as used by Multicall3
// tryAggregate, with the length word at headOffset. Malformed input yields an
// empty slice.
func DecodeCallArray(data []byte, headOffset int) []Call {
	return decodeTupleArray(data, headOffset, func(data []byte, start int) (Call, bool) {
		target, ok := wordAt(data, start)
		if !ok {
			return Call{}, false
		}

		callData, ok := decodeDynamicField(data, start, start+WordSize)
		if !ok {
			return Call{}, false
		}

		return Call{
			Target:   common.BytesToAddress(target[WordSize-common.AddressLength:]),
			CallData: callData,
		}, true
	})
}

// DecodeMulticall decodes the sub-calls of an aggregate3 or tryAggregate call.
// It reports false when data does not start with either selector or is malformed.
func DecodeMulticall(data []byte) ([]Call, bool) {
	switch {
	case Aggregate3Selector.Matches(data):
		head, ok := DecodeOffset(data, 0)
		if !ok {
			return nil, false
		}
		calls := DecodeCall3Array(data, head)
		return calls, calls != nil

	case TryAggregateSelector.Matches(data):
		head, ok := DecodeOffset(data, 1)
		if !ok {
			return nil, false
		}
		calls := DecodeCallArray(data, head)
		return calls, calls != nil

	default:
		return nil, false
	}
}

// DecodeResultArray decodes the (bool,bytes)[] return value of aggregate3 or
// tryAggregate as returned by eth_call (no selector).
func DecodeResultArray(data []byte) ([]Result, bool) {
	head, ok := intAt(data, 0)
	if !ok {
		return nil, false
	}

	results := decodeTupleArray(data, head, func(data []byte, start int) (Result, bool) {
		success, ok := boolAt(data, start)
		if !ok {
			return Result{}, false
		}

		returnData, ok := decodeDynamicField(data, start, start+WordSize)
		if !ok {
			return Result{}, false
		}

		return Result{Success: success, ReturnData: returnData}, true
	})
	return results, results != nil
}

// DecodeExecuteCall decodes an execute(address[],bytes[]) call built by
// EncodeExecuteCall. It reports false on malformed input.
func DecodeExecuteCall(data []byte) (Selector, []common.Address, [][]byte, bool) {
	selector, ok := SelectorFromBytes(data)
	if !ok {
		return Selector{}, nil, nil, false
	}

	targetsHead, ok := DecodeOffset(data, 0)
	if !ok {
		return Selector{}, nil, nil, false
	}

	callDatasHead, ok := DecodeOffset(data, 1)
	if !ok {
		return Selector{}, nil, nil, false
	}

	targets := DecodeAddressArray(data, targetsHead)
	callDatas := DecodeBytesArray(data, callDatasHead)
	if targets == nil || callDatas == nil {
		return Selector{}, nil, nil, false
	}

	return selector, targets, callDatas, true
}

// decodeTupleArray decodes a dynamic array of dynamic elements: a length
// word at headOffset followed by one offset word per element, each relative
// to the start of the offset table. An empty array decodes to a non-nil
// empty slice; any malformed element makes the whole array decode to nil.
func decodeTupleArray[T any](data []byte, headOffset int, element func(data []byte, start int) (T, bool)) []T {
	n, ok := intAt(data, headOffset)
	if !ok {
		return nil
	}

	table := headOffset + WordSize
	if n > (len(data)-table)/WordSize {
		return nil
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		off, ok := intAt(data, table+i*WordSize)
		if !ok {
			return nil
		}

		v, ok := element(data, table+off)
		if !ok {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// decodeDynamicBytes decodes a (length, bytes) segment starting at start.
func decodeDynamicBytes(data []byte, start int) ([]byte, bool) {
	n, ok := intAt(data, start)
	if !ok {
		return nil, false
	}

	begin := start + WordSize
	if n > len(data)-begin {
		return nil, false
	}

	out := make([]byte, n)
	copy(out, data[begin:begin+n])
	return out, true
}

// decodeDynamicField follows the offset word at fieldOffset, relative to
// tupleStart, to a (length, bytes) segment.
func decodeDynamicField(data []byte, tupleStart, fieldOffset int) ([]byte, bool) {
	off, ok := intAt(data, fieldOffset)
	if !ok {
		return nil, false
	}
	return decodeDynamicBytes(data, tupleStart+off)
}
