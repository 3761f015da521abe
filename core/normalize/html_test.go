package normalize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/sitehash/core/normalize"
)

// fakeSession satisfies core.RenderSession without a browser. It returns
// rendered when set, otherwise it echoes the input document unchanged.
type fakeSession struct {
	rendered string
	started  bool
	closed   bool
}

func (f *fakeSession) EnsureStarted() error { f.started = true; return nil }

func (f *fakeSession) RenderHTML(_ context.Context, html string) (string, error) {
	f.started = true
	if f.rendered != "" {
		return f.rendered, nil
	}
	return html, nil
}

func (f *fakeSession) Shutdown() { f.closed = true }

func TestHTMLExcludesScriptStyleComments(t *testing.T) {
	doc := `<script>evil()</script><p>Hello</p><!-- note -->`

	got, err := normalize.HTML(context.Background(), &fakeSession{}, "sha256", []byte(doc), "")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hello"), got.Contents)
	assert.Equal(t, "185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969", got.Hash)
}

func TestHTMLHashesPostRenderDOM(t *testing.T) {
	// The session's output, not the raw document, is what gets extracted,
	// so script-driven mutations show up in the hash.
	session := &fakeSession{rendered: `<html><body><p>Injected</p></body></html>`}
	doc := `<html><body><script>document.write("Injected")</script></body></html>`

	got, err := normalize.HTML(context.Background(), session, "sha256", []byte(doc), "")
	require.NoError(t, err)
	assert.Equal(t, []byte("Injected"), got.Contents)
	assert.Equal(t, "3a4e038a17b11bd9816b08256a52fdfbcf1c8192761e27225077949c6c1d95e4", got.Hash)
}

func TestHTMLWithDeclaredEncoding(t *testing.T) {
	got, err := normalize.HTML(context.Background(), &fakeSession{}, "sha256",
		utf16le("<html><body>Hi</body></html>"), "utf-16le")
	require.NoError(t, err)
	assert.Equal(t, []byte("Hi"), got.Contents)
}

func TestVisibleText(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"whitespace trimmed and joined",
			`<html><head><title>T</title><style>p{color:red}</style></head>` +
				`<body><p> A </p><div>B<!--x--><span>C</span></div></body></html>`,
			"T A B C",
		},
		{
			"whitespace-only nodes contribute nothing",
			"<p>one</p>\n\t  <p>two</p>",
			"one two",
		},
		{
			"script and style text invisible",
			`<style>body{}</style><script>var x=1;</script><b>only this</b>`,
			"only this",
		},
		{
			"empty document",
			"",
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalize.VisibleText(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
