// Package bus carries correlated messages between the interception side and
// the session store. Every subscriber sees every envelope; receivers filter
// on session and type. Request/response pairs share a request id and are
// matched by a Correlator.
package bus

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Source tags every envelope published by this system.
const Source = "txbatch"

// MessageType names the kind of an envelope.
type MessageType string

const (
	// TypeGetBatch asks the session store for the batch; answered by TypeBatchResponse.
	TypeGetBatch MessageType = "TXBATCH_BATCH_QUERY"
	// TypeBatchResponse carries the batch.State.
	TypeBatchResponse MessageType = "TXBATCH_BATCH_RESPONSE"

	// TypeCaptureApproval hands an approval to the session store. No answer.
	TypeCaptureApproval MessageType = "TXBATCH_APPROVAL"

	// TypeFindApproval carries an allowance query; answered by TypeApprovalMatch
	// with the matching approval or null.
	TypeFindApproval MessageType = "TXBATCH_ALLOWANCE_QUERY"
	// TypeApprovalMatch carries the match or null.
	TypeApprovalMatch MessageType = "TXBATCH_ALLOWANCE_MATCH"

	// TypeResetBatch empties the batch. No answer.
	TypeResetBatch MessageType = "TXBATCH_BATCH_RESET"

	// TypeGetAddress asks the proxy side for its selected account; answered
	// by TypeAddressResponse.
	TypeGetAddress MessageType = "TXBATCH_GET_ADDRESS"
	// TypeAddressResponse carries the address or null.
	TypeAddressResponse MessageType = "TXBATCH_ADDRESS_RESPONSE"

	// TypeSetEnabled turns interception on or off on the proxy side.
	TypeSetEnabled MessageType = "TXBATCH_SET_ENABLED"
)

// ErrEmptyPayload is returned when decoding an envelope without payload.
var ErrEmptyPayload = errors.New("envelope has no payload")

// Envelope is a single bus message.
type Envelope struct {
	Source    string          `json:"source"`
	Type      MessageType     `json:"type"`
	RequestID string          `json:"requestId,omitempty"`
	SessionID string          `json:"sessionId"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope builds an envelope for sessionID. A nil payload is omitted.
func NewEnvelope(sessionID string, t MessageType, requestID string, payload any) (Envelope, error) {
	env := Envelope{
		Source:    Source,
		Type:      t,
		RequestID: requestID,
		SessionID: sessionID,
	}

	if payload == nil {
		return env, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", t, err)
	}
	env.Payload = raw
	return env, nil
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v any) error {
	if len(e.Payload) == 0 {
		return ErrEmptyPayload
	}

	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return nil
}

// For reports whether the envelope was published by this system for sessionID.
func (e Envelope) For(sessionID string) bool {
	return e.Source == Source && e.SessionID == sessionID
}
