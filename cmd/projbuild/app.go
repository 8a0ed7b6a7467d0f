package projbuild

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/projbuild/pkg/config"
	"github.com/arthur-debert/projbuild/pkg/core"
	"github.com/arthur-debert/projbuild/pkg/display"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/filesystem"
	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// app holds the state one invocation shares across commands and menu turns
type app struct {
	workDir string
	cfg     *config.Config
	out     io.Writer
}

func newApp(dir string, overrides map[string]interface{}, out io.Writer) (*app, error) {
	workDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrWorkDir, err)
	}
	cfg, err := config.Load(workDir, overrides)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrConfig)
	}
	return &app{workDir: workDir, cfg: cfg, out: out}, nil
}

func (a *app) options() core.Options {
	return core.OptionsFromConfig(a.cfg, a.workDir)
}

func (a *app) println(s string) {
	fmt.Fprintln(a.out, s)
}

// show prints the live tree of the working directory
func (a *app) show() {
	a.println(style.TitleStyle.Render(MsgCurrentTree))
	a.println(display.TreeLegend())
	a.println("")
	fmt.Fprint(a.out, display.RenderTree(a.fsys(), filepath.Base(a.workDir), a.cfg.Ignore))
	a.println("")
}

// analyze prints the parsed paths, plus the position table in diagnostics
// mode, or the whole structure in a machine-readable format
func (a *app) analyze(format string) error {
	s, err := core.Analyze(a.options())
	if err != nil {
		return err
	}

	if format != "" && format != display.FormatText {
		data, err := display.Encode(s, format)
		if err != nil {
			return fmt.Errorf(MsgErrOutputFormat, err)
		}
		_, err = a.out.Write(data)
		return err
	}

	fmt.Fprint(a.out, display.RenderPaths(s))
	if a.cfg.Diagnostics {
		a.println("")
		fmt.Fprint(a.out, display.RenderAnalysis(s))
	}
	return nil
}

// create synthesizes the structure and prints the resulting tree
func (a *app) create() error {
	a.println(style.WarningStyle.Render(MsgCreating))
	result, err := core.CreateProject(a.options())
	if err != nil {
		a.reportMismatch(err)
		return err
	}
	fmt.Fprint(a.out, display.RenderCreateReport(result.Report, a.cfg.Diagnostics))
	a.println("")
	fmt.Fprint(a.out, display.RenderTree(a.fsys(), result.Structure.RootName(), a.cfg.Ignore))
	return nil
}

// cleanup asks confirmer, then runs the destroyer
func (a *app) cleanup(forceful bool, confirmer types.Confirmer) error {
	a.println(style.WarningStyle.Render(MsgCleaningUp))
	if a.cfg.AssumeYes {
		confirmer = types.AlwaysConfirm
	}
	result, err := core.CleanupProject(a.options(), forceful, confirmer)
	if err != nil {
		a.reportMismatch(err)
		return err
	}
	fmt.Fprint(a.out, display.RenderCleanupReport(result.Report, a.cfg.Diagnostics))
	return nil
}

// reportMismatch prints recovery guidance for a root guard failure
func (a *app) reportMismatch(err error) {
	if !errors.IsErrorCode(err, errors.ErrRootMismatch) {
		return
	}
	details := errors.GetErrorDetails(err)
	fmt.Fprint(a.out, display.RenderRootMismatch(
		fmt.Sprint(details["source"]),
		fmt.Sprint(details["stated"]),
		fmt.Sprint(details["actual"]),
	))
}

func (a *app) fsys() types.FS {
	return filesystem.NewOS(a.workDir)
}
