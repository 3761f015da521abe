package textenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sitehash/core"
	"github.com/gaurav-prasanna/sitehash/core/textenc"
)

// utf16le encodes an ASCII-only string as UTF-16LE without a BOM.
func utf16le(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		out = append(out, s[i], 0x00)
	}
	return out
}

func TestRecodeUTF16(t *testing.T) {
	got, err := textenc.Recode(utf16le("Hello, world!"), "utf-16le")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello, world!"), got)
}

func TestRecodeUTF8Passthrough(t *testing.T) {
	contents := []byte("déjà vu")
	got, err := textenc.Recode(contents, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, contents, got)
}

func TestRecodeLatin1(t *testing.T) {
	// 0xe9 is é in ISO-8859-1; UTF-8 encodes it as 0xc3 0xa9.
	got, err := textenc.Recode([]byte{'c', 'a', 'f', 0xe9}, "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("café"), got)
}

func TestRecodeUnknownCharset(t *testing.T) {
	_, err := textenc.Recode([]byte("x"), "no-such-charset")
	require.Error(t, err)

	var encErr *core.EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "no-such-charset", encErr.Encoding)
}
