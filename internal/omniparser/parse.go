package omniparser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// DefaultInputType is reported when the request body has no "type" key
const DefaultInputType = "unknown"

// Parse failures that are not JSON syntax errors
var (
	ErrNotObject   = errors.New("input is not a JSON object")
	ErrInvalidUTF8 = errors.New("input is not valid UTF-8")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Payload is a decoded request body. Keys are looked up leniently.
type Payload map[string]interface{}

// Get returns the value stored under key, or def if the key is absent
func (p Payload) Get(key string, def interface{}) interface{} {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// ParseResult is the outcome of parsing a request body
type ParseResult struct {
	OK      bool
	Payload Payload
	Reason  error
}

// InputType returns the body's "type" value, or DefaultInputType
func (r ParseResult) InputType() interface{} {
	return r.Payload.Get("type", DefaultInputType)
}

// Parse decodes body as a single JSON object. Numbers keep their literal form.
// The body must be UTF-8; a leading byte order mark is skipped.
func Parse(body []byte) ParseResult {
	body = bytes.TrimPrefix(body, utf8BOM)
	if !utf8.Valid(body) {
		return ParseResult{Reason: ErrInvalidUTF8}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return ParseResult{Reason: fmt.Errorf("decoding input: %w", err)}
	}
	if _, err := dec.Token(); err != io.EOF {
		return ParseResult{Reason: errors.New("decoding input: extra data after JSON value")}
	}
	if p == nil {
		return ParseResult{Reason: ErrNotObject}
	}

	return ParseResult{OK: true, Payload: p}
}
