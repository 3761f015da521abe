package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/normalize"
)

func TestJSONCanonicalForm(t *testing.T) {
	got, err := normalize.JSON("sha256", []byte(`{ "b": 1, "a": 2 }`), "")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2,"b":1}`), got.Contents)
	assert.Equal(t, "d3626ac30a87e6f7a6428233b3c68299976865fa5508e4267c5415c76af7a772", got.Hash)
}

func TestJSONEquivalentDocumentsHashIdentically(t *testing.T) {
	first, err := normalize.JSON("sha256", []byte(`{"b":1,"a":2}`), "")
	require.NoError(t, err)
	second, err := normalize.JSON("sha256", []byte("{\n  \"a\": 2,\n  \"b\": 1\n}"), "")
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.Equal(t, first.Contents, second.Contents)
}

func TestJSONIdempotent(t *testing.T) {
	canonical := []byte(`{"a":2,"b":1}`)
	got, err := normalize.JSON("sha256", canonical, "")
	require.NoError(t, err)
	assert.Equal(t, canonical, got.Contents)
}

func TestJSONSortsNestedKeys(t *testing.T) {
	got, err := normalize.JSON("sha256", []byte(`{"b":{"d":1,"c":2},"a":[{"z":1,"y":2}]}`), "")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":[{"y":2,"z":1}],"b":{"c":2,"d":1}}`), got.Contents)
	assert.Equal(t, "091ef392e411718e9c99f1743f9b057210ab4858266b6dce6c45d1aeb6565b00", got.Hash)
}

func TestJSONPreservesNumberLiterals(t *testing.T) {
	got, err := normalize.JSON("sha256", []byte(`{"price": 1.50, "qty": 10000000000000001}`), "")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"price":1.50,"qty":10000000000000001}`), got.Contents)
}

func TestJSONDoesNotEscapeHTML(t *testing.T) {
	got, err := normalize.JSON("sha256", []byte(`{"a":"<b>&</b>"}`), "")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":"<b>&</b>"}`), got.Contents)
}

func TestJSONWithDeclaredEncoding(t *testing.T) {
	got, err := normalize.JSON("sha256", utf16le(`{"b":1,"a":2}`), "utf-16le")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2,"b":1}`), got.Contents)
}

func TestJSONMalformed(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"truncated", `{"a":`},
		{"not json", `hello world`},
		{"trailing garbage", `{"a":1} trailing`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize.JSON("sha256", []byte(tt.contents), "")
			require.Error(t, err)

			var malformed *core.MalformedJSONError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}
