package event

import "encoding/json"

// DecodePayload returns the payload as T. Payloads published on the MemoryBus
// are already typed; anything else (a map from a decoded snapshot or a test
// fixture) goes through JSON.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	if p, ok := payload.(*T); ok && p != nil {
		return *p, nil
	}

	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}
