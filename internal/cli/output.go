package cli

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
)

// Result is what a command prints. Text is used for text output; the structured formats encode the whole value.
type Result struct {
	Input  string         `json:"input" yaml:"input"`
	Text   string         `json:"text,omitempty" yaml:"text,omitempty"`
	Fields map[string]int `json:"fields,omitempty" yaml:"fields,omitempty"`
	Time   string         `json:"time,omitempty" yaml:"time,omitempty"`
}

func render(w io.Writer, output string, result Result) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, result.Text)
		return err
	}
}
