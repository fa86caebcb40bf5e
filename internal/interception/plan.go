package interception

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/classifier"
	"github.com/gabapcia/txbatch/internal/pkg/abi"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/provider"
	"github.com/gabapcia/txbatch/internal/selector"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// plan is what to do with a call: answer it locally, or forward request
// upstream and optionally rewrite the result.
type plan struct {
	kind classifier.Kind

	answered bool
	result   json.RawMessage
	err      error

	request provider.Request
	rewrite func(json.RawMessage) (json.RawMessage, bool)
}

func forward(kind classifier.Kind, req provider.Request) plan {
	return plan{kind: kind, request: req}
}

func answer(kind classifier.Kind, result json.RawMessage, err error) plan {
	return plan{kind: kind, answered: true, result: result, err: err}
}

// plan classifies req and decides how to serve it. Any panic on the way
// falls back to forwarding req untouched.
func (p *InterceptingProvider) plan(ctx context.Context, req provider.Request) (pl plan) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "interception panicked, forwarding call", "rpc.method", req.Method, "panic", r)
			p.metrics.fallback(ctx, reasonPanic)
			pl = forward(classifier.KindPassthrough, req)
		}
	}()

	c := classifier.Classify(req)
	switch c.Kind {
	case classifier.KindApproval:
		return p.captureApproval(ctx, req, c)
	case classifier.KindTransaction:
		return p.batchSend(ctx, req, c)
	case classifier.KindAllowanceRead:
		return p.matchAllowance(ctx, req, c)
	case classifier.KindAggregateRead:
		return p.overlayAggregate(ctx, req, c)
	default:
		return forward(c.Kind, req)
	}
}

// captureApproval hands the approval to the session store and rejects the
// call. If the store cannot be reached the approval is sent as is.
func (p *InterceptingProvider) captureApproval(ctx context.Context, req provider.Request, c classifier.Classification) plan {
	a := batch.NewApproval(c.Transaction, c.Spender, c.Amount)

	if err := p.coordinator.CaptureApproval(ctx, a); err != nil {
		logger.Warn(ctx, "failed to capture approval, forwarding it", "error", err)
		p.metrics.fallback(ctx, reasonCaptureFailed)
		return forward(c.Kind, req)
	}

	logger.Info(ctx, "approval captured for batching",
		"approval.id", a.ID,
		"approval.token", a.Token,
		"approval.spender", a.Spender,
	)
	p.metrics.captured.Add(ctx, 1)
	return answer(c.Kind, nil, ErrApprovalCaptured)
}

// batchSend folds the active batch and the triggering transaction into one
// execute(address[],bytes[]) call to the aggregator. Whenever that is not
// possible the original transaction goes out.
func (p *InterceptingProvider) batchSend(ctx context.Context, req provider.Request, c classifier.Classification) plan {
	state, ok := p.coordinator.GetBatchState(ctx)
	if !ok {
		p.metrics.fallback(ctx, reasonBatchUnknown)
		return forward(c.Kind, req)
	}
	if !state.Active {
		return forward(c.Kind, req)
	}

	tx := c.Transaction
	targets, callDatas := state.Calls()
	if len(targets) == 0 || tx.To == nil {
		p.metrics.fallback(ctx, reasonNoTarget)
		return forward(c.Kind, req)
	}

	from, ok := p.sender(ctx, tx)
	if !ok {
		p.metrics.fallback(ctx, reasonNoSender)
		return forward(c.Kind, req)
	}

	sel, err := p.resolver.Resolve(ctx, selector.ExecuteSignature)
	if err != nil {
		logger.Warn(ctx, "failed to resolve aggregator selector, sending original transaction", "error", err)
		p.metrics.fallback(ctx, reasonSelectorFailed)
		return forward(c.Kind, req)
	}

	targets = append(targets, *tx.To)
	callDatas = append(callDatas, tx.CallData())

	aggregated := provider.Transaction{
		From:  &from,
		To:    &p.aggregator,
		Value: tx.Value,
		Data:  abi.EncodeExecuteCall(sel, targets, callDatas),
	}

	aggReq, err := provider.NewRequest(provider.MethodSendTransaction, aggregated)
	if err != nil {
		logger.Error(ctx, "failed to build aggregated transaction", "error", err)
		p.metrics.fallback(ctx, reasonEncodeFailed)
		return forward(c.Kind, req)
	}

	logger.Info(ctx, "sending batched transaction",
		"batch.approvals", len(targets)-1,
		"batch.aggregator", p.aggregator,
	)
	p.metrics.batches.Add(ctx, 1)
	return forward(c.Kind, aggReq)
}

func (p *InterceptingProvider) sender(ctx context.Context, tx provider.Transaction) (common.Address, bool) {
	if tx.From != nil {
		return *tx.From, true
	}

	addr, err := p.SelectedAddress(ctx)
	if err != nil {
		logger.Warn(ctx, "no sender for batched transaction", "error", err)
		return common.Address{}, false
	}
	return addr, true
}

// capturedAmount returns the ABI word of the amount captured for q.
func (p *InterceptingProvider) capturedAmount(ctx context.Context, q batch.AllowanceQuery) ([]byte, bool) {
	match := p.coordinator.FindApproval(ctx, q)
	if match == nil {
		return nil, false
	}

	amount, ok := match.AmountWord()
	if !ok {
		return nil, false
	}
	return abi.EncodeUint256(amount), true
}

// matchAllowance answers an allowance read with the amount of a matching
// captured approval.
func (p *InterceptingProvider) matchAllowance(ctx context.Context, req provider.Request, c classifier.Classification) plan {
	word, ok := p.capturedAmount(ctx, c.Allowance)
	if !ok {
		return forward(c.Kind, req)
	}

	result, err := json.Marshal(hexutil.Bytes(word))
	if err != nil {
		p.metrics.fallback(ctx, reasonEncodeFailed)
		return forward(c.Kind, req)
	}

	logger.Debug(ctx, "allowance answered from captured approval",
		"allowance.token", c.Allowance.Token,
		"allowance.spender", c.Allowance.Spender,
	)
	p.metrics.answered.Add(ctx, 1)
	return answer(c.Kind, result, nil)
}

// overlayAggregate forwards a multicall read and replaces the results of
// nested allowance reads that match captured approvals.
func (p *InterceptingProvider) overlayAggregate(ctx context.Context, req provider.Request, c classifier.Classification) plan {
	if len(c.Nested) == 0 {
		return forward(c.Kind, req)
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		overlay = make(map[int][]byte, len(c.Nested))
	)
	for _, nested := range c.Nested {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if word, ok := p.capturedAmount(ctx, nested.Query); ok {
				mu.Lock()
				overlay[nested.Index] = word
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(overlay) == 0 {
		return forward(c.Kind, req)
	}

	pl := forward(c.Kind, req)
	pl.rewrite = func(result json.RawMessage) (json.RawMessage, bool) {
		var raw hexutil.Bytes
		if err := json.Unmarshal(result, &raw); err != nil {
			return nil, false
		}

		results, ok := abi.DecodeResultArray(raw)
		if !ok || len(results) != len(c.Calls) {
			return nil, false
		}

		for i, word := range overlay {
			results[i] = abi.Result{Success: true, ReturnData: word}
		}

		out, err := json.Marshal(hexutil.Bytes(abi.EncodeResultArray(results)))
		if err != nil {
			return nil, false
		}

		p.metrics.answered.Add(ctx, int64(len(overlay)))
		return out, true
	}
	return pl
}
