package projbuild

import (
	"fmt"
	"os"

	"github.com/arthur-debert/projbuild/internal/version"
	"github.com/arthur-debert/projbuild/pkg/display"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/style"
	"github.com/arthur-debert/projbuild/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// cliState is shared by the root command and its children. app is built
// in the root's PersistentPreRunE, once flags are parsed.
type cliState struct {
	verbosity   int
	dir         string
	file        string
	diagnostics bool
	yes         bool
	noColor     bool

	app *app
}

// overrides maps explicitly set flags onto configuration keys
func (s *cliState) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("file") {
		out["structure_file"] = s.file
	}
	if flags.Changed("diagnostics") {
		out["diagnostics"] = s.diagnostics
	}
	if flags.Changed("yes") {
		out["assume_yes"] = s.yes
	}
	return out
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:     "projbuild",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(state.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if state.noColor {
				style.DisableColor()
			}

			a, err := newApp(state.dir, state.overrides(cmd), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			state.app = a
			log.Debug().
				Str("workDir", a.workDir).
				Str("structureFile", a.cfg.StructureFile).
				Str("configSource", a.cfg.Source).
				Msg("Configuration loaded")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&state.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&state.dir, "dir", "C", ".", MsgFlagDir)
	pf.StringVarP(&state.file, "file", "f", "", MsgFlagFile)
	pf.BoolVarP(&state.diagnostics, "diagnostics", "d", false, MsgFlagDiagnostics)
	pf.BoolVarP(&state.yes, "yes", "y", false, MsgFlagYes)
	pf.BoolVar(&state.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newShowCmd(state))
	rootCmd.AddCommand(newAnalyzeCmd(state))
	rootCmd.AddCommand(newCreateCmd(state))
	rootCmd.AddCommand(newCleanupCmd(state))
	rootCmd.AddCommand(newMenuCmd(state))
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newConfigCmd(state))
	rootCmd.AddCommand(newManCmd(rootCmd))

	return rootCmd
}

func newShowCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state.app.show()
			return nil
		},
	}
}

func newAnalyzeCmd(state *cliState) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   MsgAnalyzeShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.analyze(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", display.FormatText, MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return display.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newCreateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   MsgCreateShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.app.create()
		},
	}
}

func newCleanupCmd(state *cliState) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   MsgCleanupShort,
		Long:    MsgCleanupLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dialog := confirmations.NewDialog(cmd.InOrStdin(), cmd.OutOrStdout())
			return state.app.cleanup(force, dialog)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newMenuCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		Short:   MsgMenuShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dialog := confirmations.NewDialog(cmd.InOrStdin(), cmd.OutOrStdout())
			return runMenu(state.app, dialog)
		},
	}
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "format",
		Short:   MsgFormatShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := display.NewMarkdownRenderer()
			if !stdoutIsTerminal() {
				renderer.Style = "notty"
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderer.Render(display.FormatGuide()))
			return err
		},
	}
}

func newConfigCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.app.cfg
			data, err := display.Encode(cfg, display.FormatTOML)
			if err != nil {
				return fmt.Errorf(MsgErrOutputFormat, err)
			}
			out := cmd.OutOrStdout()
			if cfg.Source != "" {
				fmt.Fprintf(out, "# loaded from %s\n", cfg.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "PROJBUILD",
				Section: "1",
				Source:  "projbuild " + version.Version,
			}
			if err := doc.GenManTree(rootCmd, header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "out", "man", MsgFlagManDir)
	return cmd
}
