// Package batch holds the batching domain, namely captured approvals and
// per-session batch state, together with the Coordinator that reaches the
// session store over the bus with correlated round trips.
package batch

import (
	"encoding/json"
	"time"

	"github.com/gabapcia/txbatch/internal/provider"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// Approval is a captured approve(address,uint256) transaction. Spender and
// Amount are nil when the call data stops before their argument words.
type Approval struct {
	ID         string          `json:"id" validate:"required"`
	CapturedAt time.Time       `json:"capturedAt" validate:"required"`
	From       *common.Address `json:"from,omitempty"`
	To         *common.Address `json:"to,omitempty"`
	CallData   hexutil.Bytes   `json:"data,omitempty"`
	Value      json.RawMessage `json:"value,omitempty"`
	Token      *common.Address `json:"token,omitempty" validate:"required_with=To"`
	Owner      *common.Address `json:"owner,omitempty" validate:"required_with=From"`
	Spender    *common.Address `json:"spender,omitempty" validate:"required_with=Amount"`
	Amount     *hexutil.Big    `json:"amount,omitempty"`
}

// NewApproval captures tx as an approval of amount to spender. Token and
// owner default to the transaction's target and sender.
func NewApproval(tx provider.Transaction, spender *common.Address, amount *uint256.Int) Approval {
	a := Approval{
		ID:         uuid.Must(uuid.NewV7()).String(),
		CapturedAt: time.Now().UTC(),
		From:       tx.From,
		To:         tx.To,
		CallData:   tx.CallData(),
		Value:      tx.Value,
		Spender:    spender,
	}

	if amount != nil {
		a.Amount = (*hexutil.Big)(amount.ToBig())
	}
	return a.WithDefaults()
}

// WithDefaults fills the identity, timestamp, token and owner when missing.
func (a Approval) WithDefaults() Approval {
	if a.ID == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}
	if a.CapturedAt.IsZero() {
		a.CapturedAt = time.Now().UTC()
	}
	if a.Token == nil {
		a.Token = a.To
	}
	if a.Owner == nil {
		a.Owner = a.From
	}
	return a
}

// Matches reports whether the approval grants q.Spender an allowance over
// q.Token on behalf of q.Owner. Addresses compare by value, so hex casing
// never matters.
func (a Approval) Matches(q AllowanceQuery) bool {
	return a.Token != nil && *a.Token == q.Token &&
		a.Owner != nil && *a.Owner == q.Owner &&
		a.Spender != nil && *a.Spender == q.Spender
}

// AmountWord returns the approved amount as a 256-bit integer. It reports
// false when no amount was captured or it does not fit in 256 bits.
func (a Approval) AmountWord() (*uint256.Int, bool) {
	if a.Amount == nil {
		return nil, false
	}

	v, overflow := uint256.FromBig(a.Amount.ToInt())
	if overflow {
		return nil, false
	}
	return v, true
}

// AllowanceQuery identifies an allowance(owner, spender) read on a token.
type AllowanceQuery struct {
	Token   common.Address `json:"token"`
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
}

// State is the batch of a session.
type State struct {
	Active    bool       `json:"batchActive"`
	Approvals []Approval `json:"approvals"`
}

// Calls returns the (to, data) pair of every approval that has both, in
// capture order.
func (s State) Calls() ([]common.Address, [][]byte) {
	var (
		targets   []common.Address
		callDatas [][]byte
	)
	for _, a := range s.Approvals {
		if a.To == nil || len(a.CallData) == 0 {
			continue
		}
		targets = append(targets, *a.To)
		callDatas = append(callDatas, a.CallData)
	}
	return targets, callDatas
}

// Find returns the first approval matching q, or nil.
func (s State) Find(q AllowanceQuery) *Approval {
	for i := range s.Approvals {
		if s.Approvals[i].Matches(q) {
			match := s.Approvals[i]
			return &match
		}
	}
	return nil
}
