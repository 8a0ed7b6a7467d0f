package projbuild

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Build a project skeleton from an ASCII tree diagram"
	MsgShowShort    = "Show the current directory tree"
	MsgAnalyzeShort = "Show the paths parsed from the structure file"
	MsgCreateShort  = "Create the files and directories the structure file lists"
	MsgCleanupShort = "Remove the files and directories the structure file lists"
	MsgMenuShort    = "Run the interactive menu"
	MsgFormatShort  = "Explain the structure file format"
	MsgConfigShort  = "Print the effective configuration"
	MsgManShort     = "Generate man pages"

	// Status messages
	MsgHeader          = "=== Project Builder ==="
	MsgPwd             = "pwd:  %s\n"
	MsgCurrentTree     = "Current project structure:"
	MsgCreating        = "Creating project structure..."
	MsgCleaningUp      = "Cleaning up project structure..."
	MsgExiting         = "Exiting Project Builder."
	MsgInvalidChoice   = "%s is an invalid choice. Please select from the menu options only."
	MsgChoicePrompt    = "Enter your choice: "
	MsgDiagnosticsMode = "Diagnostics mode: %s\n"
	MsgManWritten      = "Man pages written to %s\n"

	// Error messages
	MsgErrWorkDir      = "failed to resolve working directory: %w"
	MsgErrConfig       = "failed to load configuration"
	MsgErrOutputFormat = "failed to encode output: %w"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir         = "Working directory; its name must match the structure file's root"
	MsgFlagFile        = "Structure file, relative to the working directory"
	MsgFlagDiagnostics = "Show per-line position diagnostics and per-entry errors"
	MsgFlagYes         = "Skip the cleanup confirmation"
	MsgFlagNoColor     = "Disable colored output"
	MsgFlagOutput      = "Output format: text, json, yaml or toml"
	MsgFlagForce       = "Remove everything in the working directory except protected files"
	MsgFlagManDir      = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/cleanup-long.txt
	msgCleanupLongRaw string
	MsgCleanupLong    = strings.TrimSpace(msgCleanupLongRaw)

	//go:embed msgs/menu.txt
	msgMenuRaw string
	MsgMenu    = strings.TrimRight(msgMenuRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
