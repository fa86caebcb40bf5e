// Package batchtest holds approval fixtures shared by the batch storage and
// session store tests.
package batchtest

import (
	"github.com/gabapcia/txbatch/internal/batch"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// Addresses used by Approval.
var (
	// Token is the approved token.
	Token = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	// Owner grants the approval.
	Owner = common.HexToAddress("0x1111111111111111111111111111111111111111")

	// Spender receives the allowance.
	Spender = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

// Approval returns a fresh approval of amount granted by Owner to Spender
// on Token.
func Approval(amount uint64) batch.Approval {
	token, owner, spender := Token, Owner, Spender

	a := batch.Approval{
		From:     &owner,
		To:       &token,
		CallData: hexutil.MustDecode("0x095ea7b3"),
		Spender:  &spender,
		Amount:   (*hexutil.Big)(uint256.NewInt(amount).ToBig()),
	}
	return a.WithDefaults()
}
