// Package json wraps the sonic JSON implementation behind the familiar
// Marshal/Unmarshal surface so the codec can be swapped in one place.
package json

import "github.com/bytedance/sonic"

func Marshal(v interface{}) ([]byte, error) {
	return sonic.Marshal(v)
}

func MarshalToString(v interface{}) (string, error) {
	return sonic.MarshalString(v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return sonic.ConfigDefault.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return sonic.Unmarshal(data, v)
}

func UnmarshalString(data string, v interface{}) error {
	return sonic.UnmarshalString(data, v)
}
