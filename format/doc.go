// Package format decodes and encodes values of package value as JSON or
// YAML.
//
// # Usage
//
//	v, err := format.Decode(data, format.JSONFormat)
//
//	dec := format.NewDecoder(os.Stdin, format.YAMLFormat)
//	for {
//	    v, err := dec.Decode()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
//	err = format.Encode(v, os.Stdout, format.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/jsonwatch/value - the decoded value model
package format
