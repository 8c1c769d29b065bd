package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload as T. Events published in-process carry
// T directly; replayed events carry decoded JSON (maps or raw bytes), which is
// re-encoded into T.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("nil %T payload", v)
		}
		return *v, nil
	case json.RawMessage:
		return out, json.Unmarshal(v, &out)
	case []byte:
		return out, json.Unmarshal(v, &out)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	return out, json.Unmarshal(raw, &out)
}
