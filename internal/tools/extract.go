package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Output encodings for Extract.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ExtractOptions describes a structured extraction.
type ExtractOptions struct {
	URL        string
	SchemaPath string
	// Prompt optionally guides the extraction.
	Prompt string
	// Format is OutputJSON (default) or OutputYAML.
	Format string
}

// Extract loads the schema, asks the service for matching JSON and prints
// it indented by two spaces. The schema is checked before any request is
// made.
func (t *Toolkit) Extract(ctx context.Context, opts ExtractOptions) error {
	format := opts.Format
	if format == "" {
		format = OutputJSON
	}
	if format != OutputJSON && format != OutputYAML {
		return eris.Errorf("unknown output format %q (want json or yaml)", format)
	}

	schema, err := LoadSchema(t.fs, opts.SchemaPath)
	if err != nil {
		return err
	}

	res, err := t.svc.Extract(ctx, opts.URL, schema, opts.Prompt)
	if err != nil {
		return err
	}

	var rendered string
	if format == OutputYAML {
		rendered, err = renderYAML(res.JSON)
	} else {
		rendered, err = renderJSON(res.JSON)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(t.out, rendered)
	return nil
}

// LoadSchema reads a JSON schema file. Only well-formedness is checked; the
// document is passed to the service as is.
func LoadSchema(fs afero.Fs, path string) (json.RawMessage, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, eris.Wrapf(err, "read schema %s", path)
	}
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, eris.Wrapf(err, "parse schema %s", path)
	}
	return json.RawMessage(bytes.TrimSpace(data)), nil
}

// renderJSON indents raw without re-ordering keys.
func renderJSON(raw json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return "", eris.Wrap(err, "format extracted json")
	}
	return buf.String(), nil
}

// renderYAML converts raw to block-style YAML, keeping key order.
func renderYAML(raw json.RawMessage) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "null", nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", eris.Wrap(err, "convert extracted json")
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return "", eris.Wrap(err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return "", eris.Wrap(err, "encode yaml")
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// blockStyle clears the flow and quoting styles JSON input decodes with.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
