package projbuild

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/core"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/ui/confirmations"
)

// clearScreen homes the cursor and clears the terminal
const clearScreen = "\033[H\033[2J"

// runMenu drives the interactive loop until the user exits or input ends.
//
// The structure file is re-read for every choice. A missing structure file
// ends the loop with an error; a root mismatch is reported and the loop
// goes on.
func runMenu(a *app, dialog *confirmations.ConsoleDialog) error {
	logger := logging.GetLogger("cmd.menu")

	a.println(style.TitleStyle.Render(MsgHeader))
	fmt.Fprintf(a.out, MsgPwd, a.workDir)

	for {
		a.println("")
		a.println(menuText(a.cfg.Diagnostics))
		fmt.Fprint(a.out, "\n"+style.TitleStyle.Render(MsgChoicePrompt))

		choice, err := dialog.ReadLine()
		if err == io.EOF {
			choice = "x"
		} else if err != nil {
			return err
		}
		choice = strings.ToLower(choice)
		logger.Debug().Str("choice", choice).Msg("Menu choice")

		if choice == "" {
			continue
		}
		if choice == "x" {
			a.println("")
			a.println(style.SuccessStyle.Render(MsgExiting))
			return nil
		}

		// a structure file that vanished mid-session ends the loop
		if _, err := core.Analyze(a.options()); errors.IsFatal(err) {
			a.println(style.ErrorStyle.Render(err.Error()))
			return err
		}

		var runErr error
		switch choice {
		case "1":
			a.show()
		case "2":
			runErr = a.analyze("")
		case "3":
			runErr = a.create()
		case "4", "4f":
			runErr = a.cleanup(choice == "4f", dialog)
		case "t", "d":
			a.cfg.Diagnostics = !a.cfg.Diagnostics
			fmt.Fprintf(a.out, MsgDiagnosticsMode, onOff(a.cfg.Diagnostics))
		case "c":
			fmt.Fprint(a.out, clearScreen)
		default:
			a.println("")
			a.println(style.ErrorStyle.Render(fmt.Sprintf(MsgInvalidChoice, choice)))
		}

		if runErr == nil {
			continue
		}
		if errors.IsFatal(runErr) {
			return runErr
		}
		if !errors.IsErrorCode(runErr, errors.ErrRootMismatch) {
			// mismatch guidance is already printed
			a.println(style.ErrorStyle.Render(runErr.Error()))
		}
	}
}

func menuText(diagnostics bool) string {
	status := style.SuccessStyle.Render("OFF")
	if diagnostics {
		status = style.ErrorStyle.Render("ON")
	}
	return fmt.Sprintf(MsgMenu, status)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
