package firecrawl

import (
	"bytes"
	"encoding/json"
)

// Output formats understood by /scrape.
const (
	FormatMarkdown   = "markdown"
	FormatScreenshot = "screenshot"
	FormatJSON       = "json"
)

// Format is one entry of a "formats" list. A format with only a Type is
// sent as a bare string ("markdown"); anything else is sent as an object
// ({"type":"json","schema":{...}}).
type Format struct {
	Type   string          `json:"type"`
	Schema json.RawMessage `json:"schema,omitempty"`
	Prompt string          `json:"prompt,omitempty"`
}

// Formats turns plain format names into a formats list.
func Formats(types ...string) []Format {
	out := make([]Format, len(types))
	for i, t := range types {
		out[i] = Format{Type: t}
	}
	return out
}

// JSONFormat requests structured extraction against schema, optionally
// guided by prompt.
func JSONFormat(schema json.RawMessage, prompt string) Format {
	return Format{Type: FormatJSON, Schema: schema, Prompt: prompt}
}

func (f Format) isBare() bool {
	return len(f.Schema) == 0 && f.Prompt == ""
}

// MarshalJSON implements json.Marshaler.
func (f Format) MarshalJSON() ([]byte, error) {
	if f.isBare() {
		return json.Marshal(f.Type)
	}
	type plain Format
	return json.Marshal(plain(f))
}

// SearchData holds web search hits. The v1 API returned a flat array; v2
// nests it under "web". Both shapes decode into Web.
type SearchData struct {
	Web []SearchResult `json:"web,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *SearchData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		*d = SearchData{}
		return json.Unmarshal(trimmed, &d.Web)
	}
	type plain SearchData
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*d = SearchData(p)
	return nil
}
