package utils

import (
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/tidwall/gjson"
)

// ParseErrorPrefix starts every diagnostic produced for an unreadable response.
const ParseErrorPrefix = "Error parsing response: "

// ExtractResult carries either the text extracted from a response or the
// reason extraction failed. It is a value, never a panic.
type ExtractResult struct {
	Text string
	Err  error
}

// OK reports whether extraction succeeded.
func (r ExtractResult) OK() bool {
	return r.Err == nil
}

// String returns the extracted text, or the diagnostic string on failure.
func (r ExtractResult) String() string {
	if r.Err != nil {
		return ParseErrorPrefix + r.Err.Error()
	}
	return r.Text
}

func failed(err error) ExtractResult {
	return ExtractResult{Err: err}
}

// ExtractText extracts the text of an Anthropic-style response, returning the
// diagnostic string when the body cannot be read.
func ExtractText(responseBody string) string {
	return ExtractContentBlocks([]byte(responseBody)).String()
}

// ExtractContentBlocks concatenates the text of every "text" block of the
// response's content array, in order. Blocks of other types are skipped.
func ExtractContentBlocks(body []byte) ExtractResult {
	root, err := parseObject(body)
	if err != nil {
		return failed(err)
	}

	content := root.Get("content")
	if !content.Exists() {
		return failed(errors.New(`missing "content"`))
	}
	if !content.IsArray() {
		return failed(errors.New(`"content" is not an array`))
	}

	var sb strings.Builder
	for i, block := range content.Array() {
		if !block.IsObject() {
			return failed(errors.Errorf("content[%d] is not an object", i))
		}
		typ := block.Get("type")
		if typ.Type != gjson.String {
			return failed(errors.Errorf(`content[%d] has no string "type"`, i))
		}
		if typ.Str != "text" {
			continue
		}
		text := block.Get("text")
		if text.Type != gjson.String {
			return failed(errors.Errorf(`content[%d] has no string "text"`, i))
		}
		sb.WriteString(text.Str)
	}
	return ExtractResult{Text: sb.String()}
}

// ExtractArrayField joins the string at field of every element of the array
// stored under arrayKey. field may be a nested path such as "data.text".
func ExtractArrayField(body []byte, arrayKey, field, sep string) ExtractResult {
	root, err := parseObject(body)
	if err != nil {
		return failed(err)
	}

	items := root.Get(arrayKey)
	if !items.IsArray() {
		return failed(errors.Errorf("missing %q array", arrayKey))
	}

	parts := make([]string, 0, len(items.Array()))
	for i, item := range items.Array() {
		value := item.Get(field)
		if value.Type != gjson.String {
			return failed(errors.Errorf("%s[%d] has no string %q", arrayKey, i, field))
		}
		parts = append(parts, value.Str)
	}
	return ExtractResult{Text: strings.Join(parts, sep)}
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, errors.New("response is not a JSON object")
	}
	return root, nil
}
