package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntry_PlainWhenColorDisabled(t *testing.T) {
	DisableColor()

	assert.Equal(t, "src/", Entry("src/", true))
	assert.Equal(t, "main.go", Entry("main.go", false))
}

func TestBannerStyle_KeepsText(t *testing.T) {
	DisableColor()

	out := BannerStyle.Render("This will remove ALL files")
	assert.Contains(t, out, "This will remove ALL files")
}
