package webhook

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRequest_EscapesInput(t *testing.T) {
	r, err := EncodeRequest("mom's \"best\" pie\nwith ü")
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dish":"mom's \"best\" pie\nwith ü"}`, string(body))
}

func TestDecodeRecipe_RejectsInvalidJSON(t *testing.T) {
	_, err := DecodeRecipe([]byte("not json"))
	assert.ErrorIs(t, err, ErrInvalidJSON)

	_, err = DecodeRecipe(nil)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestDecodeRecipe_ReadsLikeJSONParse(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"recipe":"a","recipe":"b"}`, "b"},
		{`{"recipe":"a","recipe":null}`, ""},
		{`{"recipe":123}`, "123"},
		{`{"recipe":1.5}`, "1.5"},
		{`{"recipe":0}`, ""},
		{`{"recipe":true}`, "true"},
		{`{"recipe":false}`, ""},
		{`{"recipe":""}`, ""},
		{`{"recipe":["eggs","flour"]}`, `["eggs","flour"]`},
		{`{"nested":{"recipe":"x"}}`, ""},
		{`"recipe"`, ""},
	}
	for _, tt := range tests {
		got, err := DecodeRecipe([]byte(tt.body))
		require.NoError(t, err, tt.body)
		assert.Equal(t, tt.want, got, tt.body)
	}
}
