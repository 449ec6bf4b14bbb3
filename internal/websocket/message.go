package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

func NewMessage(msgType string, payload any) (*Message, error) {
	msg := &Message{
		Type:      msgType,
		Timestamp: time.Now(),
	}

	if payload == nil {
		return msg, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", msgType, err)
	}

	msg.Payload = raw
	return msg, nil
}
