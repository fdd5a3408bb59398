package services

import (
	"encoding/json"
)

// Event types the processor pushes that carry a reconciliation signal.
// Everything else is acknowledged and recorded without touching state.
const (
	EventChargeSuccess = "charge.success"
	EventChargeFailed  = "charge.failed"
)

// Notification is the parsed form of one webhook body, tagged with the
// outcome its event type maps to. Raw keeps the verbatim body for the audit
// record; signatures are always computed over Raw, never over a re-encoding.
type Notification struct {
	Event           string
	Outcome         Outcome
	Reference       string
	Channel         string
	GatewayResponse string
	Raw             json.RawMessage
}

func classifyEvent(event string) Outcome {
	switch event {
	case EventChargeSuccess:
		return OutcomeSuccess
	case EventChargeFailed:
		return OutcomeFailure
	default:
		return OutcomeUnknown
	}
}

// ParseNotification decodes a webhook body. The reference may legitimately be
// absent for event types the gateway does not reconcile; callers decide what
// that means.
func ParseNotification(raw []byte) (*Notification, error) {
	var body struct {
		Event string `json:"event"`
		Data  struct {
			Reference       string `json:"reference"`
			Channel         string `json:"channel"`
			GatewayResponse string `json:"gateway_response"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return &Notification{
		Event:           body.Event,
		Outcome:         classifyEvent(body.Event),
		Reference:       body.Data.Reference,
		Channel:         body.Data.Channel,
		GatewayResponse: body.Data.GatewayResponse,
		Raw:             raw,
	}, nil
}
