package firecrawl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{name: "bare", format: Format{Type: FormatScreenshot}, want: `"screenshot"`},
		{name: "json without prompt", format: JSONFormat(json.RawMessage(`{"type":"object"}`), ""), want: `{"type":"json","schema":{"type":"object"}}`},
		{name: "json with prompt", format: JSONFormat(json.RawMessage(`{}`), "find the price"), want: `{"type":"json","schema":{},"prompt":"find the price"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.format)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []Format{{Type: "markdown"}, {Type: "screenshot"}}, Formats(FormatMarkdown, FormatScreenshot))
	assert.Empty(t, Formats())
}

func TestSearchData_Null(t *testing.T) {
	var resp SearchResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"data":null}`), &resp))
	assert.Empty(t, resp.Data.Web)
}
