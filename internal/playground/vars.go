package playground

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
)

// ErrVarsNotObject is returned for vars that parse but are not an object.
var ErrVarsNotObject = errors.New("vars must be a JSON object")

// ParseVars parses the variables input. Blank input is the empty object.
// With lenient set the text is read as HJSON first.
func ParseVars(text string, lenient bool) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	raw := []byte(trimmed)
	if lenient {
		var loose any
		if err := hjson.Unmarshal(raw, &loose); err != nil {
			return nil, fmt.Errorf("parsing hjson vars: %w", err)
		}
		normalized, err := json.Marshal(loose)
		if err != nil {
			return nil, fmt.Errorf("normalizing hjson vars: %w", err)
		}
		raw = normalized
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing vars: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing vars: trailing data after value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrVarsNotObject
	}
	return obj, nil
}
