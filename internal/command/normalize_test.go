package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	const u = "https://example.com"
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trailing spaces", in: "Hello   \nWorld", want: "URL: https://example.com\nHello\nWorld"},
		{name: "space-only line dropped", in: "a\n   \nb", want: "URL: https://example.com\na\nb"},
		{name: "consecutive space-only lines", in: "a\n \n  \n   \nb", want: "URL: https://example.com\na\nb"},
		{name: "empty lines kept", in: "a\n\n\nb", want: "URL: https://example.com\na\n\n\nb"},
		{name: "interior whitespace kept", in: "a   b\n  indented", want: "URL: https://example.com\na   b\n  indented"},
		{name: "tabs kept", in: "a\t\n\t\nb", want: "URL: https://example.com\na\t\n\t\nb"},
		{name: "last line untouched", in: "a\nb   ", want: "URL: https://example.com\na\nb   "},
		{name: "trailing newline", in: "a  \n", want: "URL: https://example.com\na\n"},
		{name: "empty", in: "", want: "URL: https://example.com\n"},
		{name: "crlf untouched", in: "a \r\nb", want: "URL: https://example.com\na \r\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, u))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"# Title\n\nParagraph one.\n\n- item\n- item 2\n",
		"héllo wörld\n\n日本語\n",
		"",
		"no newline",
	}
	for _, in := range inputs {
		once := Normalize(in, "https://example.com")
		// Already-normalized bodies survive a second pass unchanged.
		assert.Equal(t, "URL: https://example.com\n"+in, once)
		body := once[len("URL: https://example.com\n"):]
		assert.Equal(t, once, Normalize(body, "https://example.com"))
	}
}
