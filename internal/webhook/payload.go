package webhook

import (
	"bytes"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// EncodeRequest builds the request body {"dish": dish}.
func EncodeRequest(dish string) (*bytes.Reader, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "dish", dish)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(body), nil
}

// DecodeRecipe extracts the "recipe" value from a reply body. Any valid JSON
// is accepted. When the key repeats, the last one wins. A missing, null,
// false, zero or empty "recipe" yields "". Other scalars are returned in
// their text form and objects or arrays as their raw JSON.
func DecodeRecipe(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", ErrInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return "", nil
	}
	var field gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		if key.Str == "recipe" {
			field = value
		}
		return true
	})

	switch field.Type {
	case gjson.String:
		return field.Str, nil
	case gjson.Number:
		if field.Num == 0 {
			return "", nil
		}
		return strconv.FormatFloat(field.Num, 'f', -1, 64), nil
	case gjson.True:
		return "true", nil
	case gjson.JSON:
		return field.Raw, nil
	}
	return "", nil
}
