package confirmations

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_Confirm(t *testing.T) {
	style.DisableColor()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lower y", "y\n", true},
		{"upper Y", "Y\n", true},
		{"padded", "  y  \n", true},
		{"yes is not y", "yes\n", false},
		{"n", "n\n", false},
		{"empty line", "\n", false},
		{"end of input", "", false},
		{"no newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			d := NewDialog(strings.NewReader(tt.input), &out)

			got, err := d.Confirm("This will remove ALL files")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "This will remove ALL files")
			assert.Contains(t, out.String(), MsgConfirmPrompt)
		})
	}
}

func TestConsoleDialog_SharesReaderAcrossPrompts(t *testing.T) {
	d := NewDialog(strings.NewReader("3\ny\n"), &bytes.Buffer{})

	choice, err := d.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "3", choice)

	ok, err := d.Confirm("sure?")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = d.ReadLine()
	assert.Equal(t, io.EOF, err)
}
