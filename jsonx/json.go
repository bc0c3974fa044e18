package jsonx

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(v interface{}) ([]byte, error) {
	return jsonx.Marshal(v)
}

func MarshalToString(v interface{}) (string, error) {
	return jsonx.MarshalToString(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return jsonx.Unmarshal(data, v)
}

func NewDecoder(r io.Reader) *jsoniter.Decoder {
	return jsonx.NewDecoder(r)
}

func NewEncoder(w io.Writer) *jsoniter.Encoder {
	return jsonx.NewEncoder(w)
}

// Compact re-encodes raw JSON into its minimal textual form. Used when a
// response field has to be rendered as text regardless of its JSON type.
func Compact(raw []byte) (string, error) {
	var v interface{}
	if err := jsonx.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	return jsonx.MarshalToString(v)
}
