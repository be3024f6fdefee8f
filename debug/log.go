package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonwatch/value"
)

// Output is where Logf writes.
var Output io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(value.Plain(a), "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(Output, msg, args...)
}
