// Package classifier tells which calls the interception layer acts on.
package classifier

import (
	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/pkg/abi"
	"github.com/gabapcia/txbatch/internal/pkg/types"
	"github.com/gabapcia/txbatch/internal/provider"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Kind is what a call is to the interception layer.
type Kind int

const (
	// KindPassthrough calls are forwarded untouched.
	KindPassthrough Kind = iota

	// KindApproval is a transaction submission calling approve(address,uint256).
	KindApproval

	// KindTransaction is any other transaction submission.
	KindTransaction

	// KindAllowanceRead is an eth_call of allowance(address,address).
	KindAllowanceRead

	// KindAggregateRead is an eth_call of aggregate3 or tryAggregate.
	KindAggregateRead
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindApproval:
		return "approval"
	case KindTransaction:
		return "transaction"
	case KindAllowanceRead:
		return "allowance_read"
	case KindAggregateRead:
		return "aggregate_read"
	default:
		return "passthrough"
	}
}

var (
	submissionMethods = types.NewSet(provider.MethodSendTransaction)
	readMethods       = types.NewSet(provider.MethodCall)
)

// NestedAllowance is an allowance read inside a multicall.
type NestedAllowance struct {
	Index int
	Query batch.AllowanceQuery
}

// Classification is the outcome of Classify. Only the fields of its Kind are set.
type Classification struct {
	Kind        Kind
	Transaction provider.Transaction

	// KindApproval. Either is nil when its argument word is missing.
	Spender *common.Address
	Amount  *uint256.Int

	// KindAllowanceRead
	Allowance batch.AllowanceQuery

	// KindAggregateRead
	Calls  []abi.Call
	Nested []NestedAllowance
}

// Classify inspects req without modifying it.
func Classify(req provider.Request) Classification {
	switch {
	case submissionMethods.Has(req.Method):
		return classifySubmission(req)
	case readMethods.Has(req.Method):
		return classifyRead(req)
	default:
		return Classification{Kind: KindPassthrough}
	}
}

func classifySubmission(req provider.Request) Classification {
	tx, ok := req.Transaction()
	if !ok {
		return Classification{Kind: KindPassthrough}
	}

	c := Classification{Kind: KindTransaction, Transaction: tx}

	data := tx.CallData()
	if !abi.ApproveSelector.Matches(data) {
		return c
	}

	c.Kind = KindApproval
	if spender, ok := abi.DecodeAddress(data, 0); ok {
		c.Spender = &spender
	}
	if amount, ok := abi.DecodeUint256(data, 1); ok {
		c.Amount = amount
	}
	return c
}

func classifyRead(req provider.Request) Classification {
	tx, ok := req.Transaction()
	if !ok || tx.To == nil {
		return Classification{Kind: KindPassthrough}
	}

	data := tx.CallData()
	if q, ok := allowanceQuery(*tx.To, data); ok {
		return Classification{Kind: KindAllowanceRead, Transaction: tx, Allowance: q}
	}

	calls, ok := abi.DecodeMulticall(data)
	if !ok {
		return Classification{Kind: KindPassthrough}
	}

	c := Classification{Kind: KindAggregateRead, Transaction: tx, Calls: calls}
	for i, call := range calls {
		if q, ok := allowanceQuery(call.Target, call.CallData); ok {
			c.Nested = append(c.Nested, NestedAllowance{Index: i, Query: q})
		}
	}
	return c
}

// allowanceQuery decodes allowance(owner, spender) called on token.
func allowanceQuery(token common.Address, data []byte) (batch.AllowanceQuery, bool) {
	if !abi.AllowanceSelector.Matches(data) {
		return batch.AllowanceQuery{}, false
	}

	owner, ok := abi.DecodeAddress(data, 0)
	if !ok {
		return batch.AllowanceQuery{}, false
	}
	spender, ok := abi.DecodeAddress(data, 1)
	if !ok {
		return batch.AllowanceQuery{}, false
	}

	return batch.AllowanceQuery{Token: token, Owner: owner, Spender: spender}, true
}
