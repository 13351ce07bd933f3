// Package jsonutil is the JSON entry point for the module. Marshal and
// Unmarshal delegate to github.com/goccy/go-json, a faster drop-in
// replacement for encoding/json that honors the same Marshaler/Unmarshaler
// contracts the openrtb2 and native1 types implement. FindElement and
// DropElement operate on raw extension payloads without decoding them.
package jsonutil

import (
	"errors"
	"strconv"

	"github.com/buger/jsonparser"
	jsonlib "github.com/goccy/go-json"
)

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return jsonlib.Marshal(v)
}

// MarshalIndent is like Marshal but applies Indent to format the output.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return jsonlib.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses the JSON-encoded data and stores the result in the value
// pointed to by v.
func Unmarshal(data []byte, v interface{}) error {
	return jsonlib.Unmarshal(data, v)
}

// FindElement reports whether the element at the given key path exists in
// data, and returns its raw JSON value if so. A missing key is not an error.
// String values are returned re-quoted so that the result is always a valid
// JSON document of its own.
func FindElement(data []byte, keys ...string) (bool, []byte, error) {
	value, dataType, _, err := jsonparser.Get(data, keys...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	if dataType == jsonparser.String {
		return true, []byte(strconv.Quote(string(value))), nil
	}
	return true, value, nil
}

// DropElement removes the element at the given key path from data, commonly
// used to strip a single vendor subtree out of an ext payload before
// forwarding it. Data is returned unchanged when the key path is absent.
func DropElement(data []byte, keys ...string) ([]byte, error) {
	if _, _, _, err := jsonparser.Get(data, keys...); err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return data, nil
		}
		return data, err
	}
	return jsonparser.Delete(data, keys...), nil
}
