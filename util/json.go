package util

import (
	"bytes"
)

var nullJSONBytes = []byte("null")

func MarshalJSON(v interface{}) ([]byte, error) {
	return marshalJSON(v)
}

func UnmarshalJSON(b []byte, v interface{}) error {
	if IsNilJSON(b) {
		return nil
	}

	return unmarshalJSON(b, v)
}

func MustMarshalJSON(i interface{}) []byte {
	b, err := marshalJSON(i)
	if err != nil {
		panic(err)
	}

	return b
}

func MarshalJSONIndent(i interface{}) ([]byte, error) {
	return marshalJSONIndent(i)
}

func MustMarshalJSONIndent(i interface{}) []byte {
	b, err := marshalJSONIndent(i)
	if err != nil {
		panic(err)
	}

	return b
}

func MustMarshalJSONIndentString(i interface{}) string {
	return string(MustMarshalJSONIndent(i))
}

func IsNilJSON(b []byte) bool {
	i := bytes.TrimSpace(b)

	return len(i) < 1 || bytes.Equal(i, nullJSONBytes)
}
