package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/jsonwatch/value"

	"github.com/goccy/go-yaml"
)

// Decode decodes a single document.
func Decode(d []byte, f Format) (any, error) {
	dec := NewDecoder(bytes.NewReader(d), f)
	v, err := dec.Decode()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty %s document", ErrBadFormat, f)
	}
	return v, err
}

// Decoder reads a stream of documents: YAML documents separated by "---",
// or concatenated JSON values.
type Decoder struct {
	f    Format
	json *json.Decoder
	yaml *yaml.Decoder
}

func NewDecoder(r io.Reader, f Format) *Decoder {
	dec := &Decoder{f: f}
	switch f {
	case JSONFormat:
		dec.json = json.NewDecoder(r)
	default:
		dec.yaml = yaml.NewDecoder(r)
	}
	return dec
}

// Decode returns the next document, or io.EOF at the end of the stream.
func (d *Decoder) Decode() (any, error) {
	var v any
	var err error
	if d.json != nil {
		err = d.json.Decode(&v)
	} else {
		err = d.yaml.Decode(&v)
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("error decoding %s: %w", d.f, err)
	}
	return Normalize(v), nil
}

// Normalize converts decoded documents to the types of package value:
// mappings with non-string keys become map[string]any, and typed slices
// and maps become []any and map[string]any.
func Normalize(v any) any {
	switch x := v.(type) {
	case []any:
		for i := range x {
			x[i] = Normalize(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = Normalize(x[k])
		}
		return x
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[fmt.Sprint(k)] = Normalize(e)
		}
		return res
	case []map[string]any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = Normalize(e)
		}
		return res
	}
	return v
}

type EncodeOption func(*encoder)

type encoder struct {
	f    Format
	wire bool
}

func EncodeFormat(f Format) EncodeOption {
	return func(e *encoder) { e.f = f }
}

// EncodeWire selects a compact single line encoding.
func EncodeWire(v bool) EncodeOption {
	return func(e *encoder) { e.wire = v }
}

// Encode writes v to w. Undefined entries are omitted and an undefined
// document encodes as null.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	e := &encoder{f: YAMLFormat}
	for _, opt := range opts {
		opt(e)
	}
	d, err := Marshal(v, e.f, e.wire)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func Marshal(v any, f Format, wire bool) ([]byte, error) {
	p := value.Plain(v)
	switch f {
	case JSONFormat:
		var d []byte
		var err error
		if wire {
			d, err = json.Marshal(p)
		} else {
			d, err = json.MarshalIndent(p, "", "  ")
		}
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	default:
		if wire {
			return yaml.MarshalWithOptions(p, yaml.Flow(true))
		}
		return yaml.Marshal(p)
	}
}
