package fourcc

import (
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// MarshalText returns the four raw bytes. encoding/json picks this up, so a
// FourCC field marshals as a JSON string; tags that are not valid UTF-8 do
// not survive the JSON path, use the binary, YAML, or CBOR forms for those.
func (f FourCC) MarshalText() ([]byte, error) {
	return append([]byte(nil), f[:]...), nil
}

// UnmarshalText sets the FourCC from exactly four bytes of text.
func (f *FourCC) UnmarshalText(text []byte) error {
	if len(text) != 4 {
		return &LengthError{Length: len(text)}
	}
	copy(f[:], text)
	return nil
}

// MarshalBinary returns the four raw bytes.
func (f FourCC) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), f[:]...), nil
}

// UnmarshalBinary sets the FourCC from exactly four bytes.
func (f *FourCC) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return &LengthError{Length: len(data)}
	}
	copy(f[:], data)
	return nil
}

// MarshalYAML emits a plain string for tags that are valid UTF-8 and a
// !!binary scalar otherwise, so every FourCC value round-trips through YAML.
func (f FourCC) MarshalYAML() (interface{}, error) {
	if utf8.Valid(f[:]) {
		return f.String(), nil
	}
	return f[:], nil
}

// UnmarshalYAML accepts the two scalar forms MarshalYAML produces: a string
// of byte length 4, or a !!binary scalar decoding to 4 bytes.
func (f *FourCC) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("fourcc: cannot decode YAML %v node into FourCC", value.Kind)
	}
	if value.Tag == "!!binary" {
		var b []byte
		if err := value.Decode(&b); err != nil {
			return err
		}
		return f.UnmarshalBinary(b)
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalCBOR encodes the FourCC as a four-byte CBOR byte string.
func (f FourCC) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(f[:])
}

// UnmarshalCBOR accepts a CBOR byte string or text string of length 4.
func (f *FourCC) UnmarshalCBOR(data []byte) error {
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case []byte:
		return f.UnmarshalBinary(t)
	case string:
		g, err := Parse(t)
		if err != nil {
			return err
		}
		*f = g
		return nil
	default:
		return fmt.Errorf("fourcc: cannot decode CBOR %T into FourCC", v)
	}
}
