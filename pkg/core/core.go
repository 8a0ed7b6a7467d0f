package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/builder"
	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/structure"
	"github.com/arthur-debert/projbuild/pkg/types"
	"github.com/rs/zerolog"
)

// CreateResult pairs the parsed structure with the synthesizer's report
type CreateResult struct {
	Structure *types.Structure
	Report    *types.CreateReport
}

// CleanupResult pairs the parsed structure with the destroyer's report
type CleanupResult struct {
	Structure *types.Structure
	Report    *types.CleanupReport
}

// Analyze loads and parses the structure file without touching anything else
func Analyze(opts Options) (*types.Structure, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve working directory")
	}
	return load(opts)
}

// CheckRoot verifies that the structure file's root names workDir
func CheckRoot(s *types.Structure, workDir string) error {
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve working directory")
	}
	stated := s.RootName()
	actual := filepath.Base(abs)
	if stated == actual {
		return nil
	}
	return errors.Newf(errors.ErrRootMismatch,
		"project root %q in %s does not match working directory %q", stated, s.Source, actual).
		WithDetail("stated", stated).
		WithDetail("actual", actual).
		WithDetail("source", s.Source)
}

// CreateProject creates every missing entry named by the structure file
func CreateProject(opts Options) (*CreateResult, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve working directory")
	}
	logger := logging.GetLogger("core").With().Str("workDir", opts.WorkDir).Logger()

	s, err := load(opts)
	if err != nil {
		return nil, err
	}
	if err := CheckRoot(s, opts.WorkDir); err != nil {
		logger.Debug().Err(err).Msg("Root guard blocked create")
		return &CreateResult{Structure: s}, err
	}

	report := builder.Create(opts.FS, s.Paths)
	surfaceFailures(logger, opts, report.Failures)

	return &CreateResult{Structure: s, Report: report}, nil
}

// CleanupProject removes the entries named by the structure file after the
// confirmer approves. With forceful set, everything else in the working
// directory goes too, except protected files.
func CleanupProject(opts Options, forceful bool, confirmer types.Confirmer) (*CleanupResult, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "cannot resolve working directory")
	}
	logger := logging.GetLogger("core").With().
		Str("workDir", opts.WorkDir).
		Bool("forceful", forceful).
		Logger()

	s, err := load(opts)
	if err != nil {
		return nil, err
	}
	if err := CheckRoot(s, opts.WorkDir); err != nil {
		logger.Debug().Err(err).Msg("Root guard blocked cleanup")
		return &CleanupResult{Structure: s}, err
	}

	if confirmer == nil {
		return &CleanupResult{Structure: s}, errors.New(errors.ErrInvalidInput, "cleanup requires a confirmer")
	}
	ok, err := confirmer.Confirm(CleanupWarning(s.Source, forceful, opts.Protected))
	if err != nil {
		return &CleanupResult{Structure: s}, errors.Wrap(err, errors.ErrAborted, "failed to read confirmation")
	}
	if !ok {
		logger.Info().Msg("Cleanup declined")
		return &CleanupResult{Structure: s, Report: &types.CleanupReport{Forceful: forceful, Aborted: true}}, nil
	}

	report := builder.Cleanup(opts.FS, s.Paths, builder.CleanupOptions{
		Forceful:  forceful,
		Protected: opts.Protected,
	})
	surfaceFailures(logger, opts, report.Failures)

	return &CleanupResult{Structure: s, Report: report}, nil
}

// CleanupWarning describes what a cleanup is about to delete
func CleanupWarning(source string, forceful bool, protected []string) string {
	if !forceful {
		return fmt.Sprintf("This will remove ALL files and directories\nspecified in the %s file", source)
	}
	quoted := make([]string, len(protected))
	for i, name := range protected {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("This will REMOVE ALL files and directories\nin the current working directory,\nexcept %s",
		strings.Join(quoted, " and "))
}

func load(opts Options) (*types.Structure, error) {
	logger := logging.GetLogger("core")

	s, err := structure.Load(opts.FS, opts.StructureFile)
	if err != nil {
		return nil, err
	}
	if opts.Diagnostics {
		for _, idx := range s.Orphans {
			line := s.Lines[idx]
			logger.Warn().
				Int("line", line.LineNumber).
				Str("name", line.Name()).
				Msg("Line has no parent in the diagram")
		}
	}
	return s, nil
}

// surfaceFailures logs per-entry errors; at warn level only in diagnostics mode
func surfaceFailures(logger zerolog.Logger, opts Options, failures []types.EntryFailure) {
	level := zerolog.DebugLevel
	if opts.Diagnostics {
		level = zerolog.WarnLevel
	}
	for _, f := range failures {
		logger.WithLevel(level).Err(f.Err).Str("path", f.Path).Msg("Entry skipped")
	}
}
