package builder

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/errors"
	"github.com/arthur-debert/projbuild/pkg/logging"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// CleanupOptions controls a Cleanup run
type CleanupOptions struct {
	// Forceful wipes the whole working directory after the standard pass
	Forceful bool

	// Protected lists files the forceful wipe keeps, as paths relative to
	// the working directory
	Protected []string
}

// Cleanup removes the entries named in paths.
//
// Files are deleted as they are met; directories are queued and removed
// afterwards, deepest first. A directory that still holds entries outside the
// list cannot be removed and is kept; that is reported in Retained, not as a
// failure.
//
// With Forceful set, every top-level entry of the working directory is then
// removed recursively, except files named in Protected and the directories
// leading to them.
func Cleanup(fsys types.FS, paths []types.ResolvedPath, opts CleanupOptions) *types.CleanupReport {
	logger := logging.GetLogger("builder.cleanup")
	done := logging.LogOperationStart(logger, "cleanup")
	defer done()

	report := &types.CleanupReport{Forceful: opts.Forceful}

	var dirs []string
	for _, p := range paths {
		info, err := fsys.Stat(p.RelativePath)
		if err != nil {
			if !stderrors.Is(err, fs.ErrNotExist) {
				report.Failures = append(report.Failures, types.EntryFailure{
					Path: p.RelativePath,
					Err:  errors.Wrapf(err, errors.ErrEntryRemove, "cannot inspect %s", p.RelativePath),
				})
			}
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, p.RelativePath)
			continue
		}
		if err := fsys.Remove(p.RelativePath); err != nil {
			report.Failures = append(report.Failures, types.EntryFailure{
				Path: p.RelativePath,
				Err:  errors.Wrapf(err, errors.ErrEntryRemove, "cannot delete %s", p.RelativePath),
			})
			logger.Debug().Err(err).Str("path", p.RelativePath).Msg("Error deleting file")
			continue
		}
		report.RemovedFiles = append(report.RemovedFiles, p.RelativePath)
		logger.Info().Str("path", p.RelativePath).Msg("Deleted file")
	}

	// longest path first removes inner directories before their parents
	sort.SliceStable(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})
	for _, dir := range dirs {
		if err := fsys.Remove(dir); err != nil {
			report.Retained = append(report.Retained, dir)
			logger.Debug().Err(err).Str("path", dir).Msg("Retaining occupied directory")
			continue
		}
		report.RemovedDirs = append(report.RemovedDirs, dir)
		logger.Info().Str("path", dir).Msg("Removed directory")
	}

	if opts.Forceful {
		wipe(fsys, opts.Protected, report)
	}

	logger.Info().
		Bool("forceful", opts.Forceful).
		Int("removed", report.Removed()).
		Int("retained", len(report.Retained)).
		Int("failed", len(report.Failures)).
		Msg("Cleanup finished")
	return report
}

// wipe removes every entry of the working directory except protected
// files. A directory on the way to a protected file is descended into and
// kept; any other directory is removed recursively.
func wipe(fsys types.FS, protected []string, report *types.CleanupReport) {
	keep := make(map[string]bool, len(protected))
	for _, name := range protected {
		if name = cleanRelative(name); name != "" {
			keep[name] = true
		}
	}
	wipeDir(fsys, ".", keep, report)
}

func wipeDir(fsys types.FS, dir string, keep map[string]bool, report *types.CleanupReport) {
	logger := logging.GetLogger("builder.cleanup")

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		report.Failures = append(report.Failures, types.EntryFailure{
			Path: dir,
			Err:  errors.Wrapf(err, errors.ErrEntryRemove, "cannot list %s", dir),
		})
		return
	}

	for _, entry := range entries {
		name := path.Join(dir, entry.Name())
		if !entry.IsDir() && keep[name] {
			logger.Debug().Str("path", name).Msg("Keeping protected file")
			continue
		}
		if entry.IsDir() && holdsProtected(name, keep) {
			logger.Debug().Str("path", name).Msg("Descending into directory holding a protected file")
			wipeDir(fsys, name, keep, report)
			continue
		}
		if err := fsys.RemoveAll(name); err != nil {
			report.Failures = append(report.Failures, types.EntryFailure{
				Path: name,
				Err:  errors.Wrapf(err, errors.ErrEntryRemove, "cannot forcefully delete %s", name),
			})
			continue
		}
		if entry.IsDir() {
			report.ForcedDirs = append(report.ForcedDirs, name)
			logger.Warn().Str("path", name).Msg("Forcefully deleted directory")
		} else {
			report.ForcedFiles = append(report.ForcedFiles, name)
			logger.Warn().Str("path", name).Msg("Forcefully deleted file")
		}
	}
}

// holdsProtected reports whether dir is an ancestor of a protected file
func holdsProtected(dir string, keep map[string]bool) bool {
	prefix := dir + "/"
	for name := range keep {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// cleanRelative normalizes a protected name to a slash-separated path
// relative to the working directory
func cleanRelative(name string) string {
	name = path.Clean(strings.TrimSpace(filepath.ToSlash(name)))
	name = strings.TrimPrefix(name, "./")
	if name == "." || name == "/" {
		return ""
	}
	return name
}
