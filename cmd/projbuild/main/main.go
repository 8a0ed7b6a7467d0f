package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/projbuild/cmd/projbuild"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/style"
)

func main() {
	rootCmd := projbuild.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			fmt.Fprintln(os.Stderr, style.MutedStyle.Render("code: "+string(code)))
		}
		os.Exit(1)
	}
}
