// Package confirmations provides UI implementations for confirmation dialogs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/style"
)

// MsgConfirmPrompt follows every warning
const MsgConfirmPrompt = "- press y or Y to confirm or any other key to abort mission"

// ConsoleDialog asks for a y/N answer on a terminal
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewDialog creates a dialog reading answers from in and writing prompts to out
func NewDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Confirm prints the warning and reads one line. Only "y" or "Y" confirms;
// end of input declines.
func (d *ConsoleDialog) Confirm(prompt string) (bool, error) {
	fmt.Fprintln(d.out, style.BannerStyle.Render(prompt))
	fmt.Fprintln(d.out, style.WarningStyle.Render(MsgConfirmPrompt))

	answer, err := d.ReadLine()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "Y", nil
}

// ReadLine reads one trimmed line. A final line without a newline is
// returned as is; io.EOF is only returned once nothing is left.
func (d *ConsoleDialog) ReadLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
