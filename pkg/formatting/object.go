package formatting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when decoded content is valid JSON but not an object.
var ErrNotObject = errors.New("not a JSON object")

// Object is a decoded JSON object whose Keys preserve wire order.
// Numeric values decode as json.Number so scalar rendering keeps the
// exact wire representation.
type Object struct {
	Keys   []string
	Values map[string]any
}

// Len returns the number of distinct keys in the object.
func (o *Object) Len() int {
	return len(o.Keys)
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// MarshalJSON re-serializes the object with its keys in wire order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range o.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		v, err := json.Marshal(o.Values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeObject decodes data as a single top-level JSON object, recording
// key order from the token stream. Malformed input returns the underlying
// parser error; well-formed non-object values (arrays, scalars, null)
// return ErrNotObject. Duplicate keys keep their first position and the
// last value, matching encoding/json.
func DecodeObject(data []byte) (*Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, decodeError(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	obj := &Object{Values: make(map[string]any)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, decodeError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, decodeError(err)
		}

		if _, seen := obj.Values[key]; !seen {
			obj.Keys = append(obj.Keys, key)
		}
		obj.Values[key] = value
	}

	if _, err := dec.Token(); err != nil {
		return nil, decodeError(err)
	}

	switch tok, err := dec.Token(); {
	case errors.Is(err, io.EOF):
		return obj, nil
	case err != nil:
		return nil, err
	default:
		return nil, fmt.Errorf("unexpected %v after top-level object", tok)
	}
}

// decodeError normalizes truncation errors to the message encoding/json
// reports for incomplete documents.
func decodeError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return errors.New("unexpected end of JSON input")
	}
	return err
}
