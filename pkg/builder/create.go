package builder

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/types"
)

const (
	dirPerm  fs.FileMode = 0755
	filePerm fs.FileMode = 0644
)

// Create makes every missing entry in paths.
//
// Directories are created with their missing ancestors. Files are created
// empty, and only when nothing exists at the path yet; an existing file is
// never opened for writing. Per-entry failures are collected, not returned.
func Create(fsys types.FS, paths []types.ResolvedPath) *types.CreateReport {
	logger := logging.GetLogger("builder.create")
	done := logging.LogOperationStart(logger, "create")
	defer done()

	report := &types.CreateReport{}
	for _, p := range paths {
		created, err := createEntry(fsys, p)
		switch {
		case err != nil:
			report.Failures = append(report.Failures, types.EntryFailure{Path: p.RelativePath, Err: err})
			logger.Debug().Err(err).Str("path", p.RelativePath).Msg("Error creating entry")
		case created:
			report.Created = append(report.Created, p.RelativePath)
			logger.Info().Str("path", p.RelativePath).Bool("directory", p.IsDirectory).Msg("Created")
		default:
			report.Existing = append(report.Existing, p.RelativePath)
			logger.Debug().Str("path", p.RelativePath).Msg("Already exists, skipping")
		}
	}

	logger.Info().
		Int("created", len(report.Created)).
		Int("existing", len(report.Existing)).
		Int("failed", len(report.Failures)).
		Str("outcome", report.Outcome()).
		Msg("Create finished")
	return report
}

func createEntry(fsys types.FS, p types.ResolvedPath) (bool, error) {
	info, err := fsys.Stat(p.RelativePath)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, errors.ErrEntryCreate, "cannot inspect %s", p.RelativePath)
	}
	exists := err == nil

	if p.IsDirectory {
		if exists && info.IsDir() {
			return false, nil
		}
		if exists {
			return false, errors.Newf(errors.ErrPathCollision, "%s exists and is not a directory", p.RelativePath).
				WithDetail("path", p.RelativePath)
		}
		if err := fsys.MkdirAll(p.RelativePath, dirPerm); err != nil {
			return false, errors.Wrapf(err, errors.ErrEntryCreate, "cannot create directory %s", p.RelativePath)
		}
		return true, nil
	}

	if exists {
		if info.IsDir() {
			return false, errors.Newf(errors.ErrPathCollision, "%s exists and is a directory", p.RelativePath).
				WithDetail("path", p.RelativePath)
		}
		return false, nil
	}

	f, err := fsys.OpenFile(p.RelativePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrEntryCreate, "cannot create file %s", p.RelativePath)
	}
	if err := f.Close(); err != nil {
		return true, errors.Wrapf(err, errors.ErrEntryCreate, "cannot close file %s", p.RelativePath)
	}
	return true, nil
}
