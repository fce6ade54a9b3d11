package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\nc", Format("a\r\nb\rc"))
	assert.Equal(t, "a\r\nb", Format("a\nb"))
}

func TestFormat_DoublesLeadingDots(t *testing.T) {
	assert.Equal(t, "..", Format("."))
	assert.Equal(t, "first\r\n..second\r\nthird.", Format("first\n.second\nthird."))
	assert.Equal(t, "...already", Format("..already"))
}

func TestLines(t *testing.T) {
	assert.Equal(t, 0, Lines("single"))
	assert.Equal(t, 2, Lines(Format("a\nb\nc")))
}

func TestPlain_Render(t *testing.T) {
	out, err := Plain{}.Render("<b>kept</b>\n.dot")
	require.NoError(t, err)
	assert.Equal(t, "<b>kept</b>\r\n..dot", out)
}

func TestHTML_Render(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs",
			in:   "<p>Hello <b>world</b></p><p>Second</p>",
			want: "Hello world\r\n\r\nSecond",
		},
		{
			name: "line breaks",
			in:   "line one<br>line two<br/>line three",
			want: "line one\r\nline two\r\nline three",
		},
		{
			name: "leading dot after markup",
			in:   "<p>.hidden</p>",
			want: "..hidden",
		},
		{
			name: "scripts dropped",
			in:   "<p>text</p><script>alert(1)</script>",
			want: "text",
		},
		{
			name: "plain text passes through",
			in:   "just words",
			want: "just words",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := HTML{}.Render(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}
