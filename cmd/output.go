package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	config "github.com/tupyy/coerce/configuration"
	"sigs.k8s.io/yaml"
)

// render writes v in the configured output format. text is used for the text format.
func render(w io.Writer, v interface{}, text func(w io.Writer) error) error {
	switch format := config.GetOutputFormat(); format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return text(w)
	}
}
