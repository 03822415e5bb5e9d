package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTextConcatenatesTextBlocks(t *testing.T) {
	body := `{"content":[{"type":"text","text":"Hello"},{"type":"image","text":"ignored"},{"type":"text","text":" world"}]}`

	require.Equal(t, "Hello world", ExtractText(body))
}

func TestExtractTextEmptyContent(t *testing.T) {
	require.Equal(t, "", ExtractText(`{"content":[]}`))
}

func TestExtractTextFailsSoft(t *testing.T) {
	cases := map[string]string{
		"not json":              "not json",
		"missing content":       `{"id":"msg_1"}`,
		"content not array":     `{"content":"text"}`,
		"block not object":      `{"content":["text"]}`,
		"block without type":    `{"content":[{"text":"hi"}]}`,
		"text block no text":    `{"content":[{"type":"text"}]}`,
		"text not string":       `{"content":[{"type":"text","text":5}]}`,
		"top level not object":  `[{"type":"text","text":"hi"}]`,
		"truncated":             `{"content":[{"type":"text","text":"Hel`,
		"empty body":            ``,
		"number instead of obj": `42`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			var out string
			require.NotPanics(t, func() { out = ExtractText(body) })
			require.True(t, strings.HasPrefix(out, ParseErrorPrefix), out)
			require.Greater(t, len(out), len(ParseErrorPrefix))
		})
	}
}

func TestExtractResult(t *testing.T) {
	ok := ExtractContentBlocks([]byte(`{"content":[{"type":"text","text":"done"}]}`))
	require.True(t, ok.OK())
	require.Equal(t, "done", ok.String())

	bad := ExtractContentBlocks([]byte(`{}`))
	require.False(t, bad.OK())
	require.Equal(t, `Error parsing response: missing "content"`, bad.String())
}

func TestExtractArrayField(t *testing.T) {
	body := []byte(`{"completions":[{"data":{"text":"a"}},{"data":{"text":"b"}}]}`)

	res := ExtractArrayField(body, "completions", "data.text", "")
	require.True(t, res.OK())
	require.Equal(t, "ab", res.Text)

	res = ExtractArrayField([]byte(`{"completions":[{"data":{}}]}`), "completions", "data.text", "")
	require.False(t, res.OK())
	require.Contains(t, res.String(), "completions[0]")

	res = ExtractArrayField([]byte(`{}`), "results", "outputText", "")
	require.Equal(t, `Error parsing response: missing "results" array`, res.String())
}
