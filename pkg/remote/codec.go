package remote

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoVariant reports a serialized container holding none of the four
// variant keys. Decoding never defaults silently.
var ErrNoVariant = errors.New("remote: no variant key present")

const (
	keySuccess = "success"
	keyFailure = "failure"
	keyLoading = "loading"
	keyInitial = "initial"
)

// decodeOrder is the fixed priority used when a container carries more than
// one recognizable key.
var decodeOrder = [...]string{keySuccess, keyFailure, keyLoading, keyInitial}

// MarshalJSON encodes the result as a single-key object: the active variant
// name mapped to its payload, or to true for Loading and Initial.
func (r RemoteResult[T, E]) MarshalJSON() ([]byte, error) {
	switch r.state {
	case StateSuccess:
		return json.Marshal(map[string]T{keySuccess: r.value})
	case StateFailure:
		return json.Marshal(map[string]E{keyFailure: r.err})
	case StateLoading:
		return []byte(`{"loading":true}`), nil
	}
	return []byte(`{"initial":true}`), nil
}

// UnmarshalJSON decodes the single-key form, checking keys in the order
// success, failure, loading, initial and taking the first one present.
// Loading and Initial ignore their payload. A container with none of the
// four keys fails with ErrNoVariant.
func (r *RemoteResult[T, E]) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("remote: decode container: %w", err)
	}

	for _, key := range decodeOrder {
		payload, ok := raw[key]
		if !ok {
			continue
		}
		switch key {
		case keySuccess:
			var v T
			if err := json.Unmarshal(payload, &v); err != nil {
				return fmt.Errorf("remote: decode success payload: %w", err)
			}
			*r = Success[T, E](v)
		case keyFailure:
			var e E
			if err := json.Unmarshal(payload, &e); err != nil {
				return fmt.Errorf("remote: decode failure payload: %w", err)
			}
			*r = Failure[T, E](e)
		case keyLoading:
			*r = Loading[T, E]()
		case keyInitial:
			*r = Initial[T, E]()
		}
		return nil
	}

	return ErrNoVariant
}

// MarshalYAML mirrors the JSON layout as a single-key mapping.
func (r RemoteResult[T, E]) MarshalYAML() (any, error) {
	switch r.state {
	case StateSuccess:
		return map[string]T{keySuccess: r.value}, nil
	case StateFailure:
		return map[string]E{keyFailure: r.err}, nil
	case StateLoading:
		return map[string]bool{keyLoading: true}, nil
	}
	return map[string]bool{keyInitial: true}, nil
}

// UnmarshalYAML decodes the single-key mapping with the same key priority
// and failure semantics as UnmarshalJSON.
func (r *RemoteResult[T, E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("remote: decode container: expected mapping, got %v", node.Kind)
	}

	present := make(map[string]*yaml.Node, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		present[node.Content[i].Value] = node.Content[i+1]
	}

	for _, key := range decodeOrder {
		payload, ok := present[key]
		if !ok {
			continue
		}
		switch key {
		case keySuccess:
			var v T
			if err := payload.Decode(&v); err != nil {
				return fmt.Errorf("remote: decode success payload: %w", err)
			}
			*r = Success[T, E](v)
		case keyFailure:
			var e E
			if err := payload.Decode(&e); err != nil {
				return fmt.Errorf("remote: decode failure payload: %w", err)
			}
			*r = Failure[T, E](e)
		case keyLoading:
			*r = Loading[T, E]()
		case keyInitial:
			*r = Initial[T, E]()
		}
		return nil
	}

	return ErrNoVariant
}
