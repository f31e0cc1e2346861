package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/pretty"
)

var prettyOptions = &pretty.Options{Width: 100, Prefix: "", Indent: "  ", SortKeys: false}

// RenderJSON writes v as indented JSON followed by a newline.
func RenderJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(pretty.PrettyOptions(raw, prettyOptions))
	return err
}
