package core

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/projbuild/pkg/config"
	"github.com/arthur-debert/projbuild/pkg/filesystem"
	"github.com/arthur-debert/projbuild/pkg/types"
)

// Options carries everything one pipeline run needs. It replaces process-wide
// toggles: each entry point receives its own copy.
type Options struct {
	// WorkDir is the directory being reconciled; its base name must match
	// the structure file's root
	WorkDir string

	// FS is rooted at WorkDir. Defaults to the OS filesystem.
	FS types.FS

	// StructureFile is read relative to WorkDir
	StructureFile string

	// Protected lists extra files the forceful wipe keeps. The structure
	// file and the default entry point are always added.
	Protected []string

	// Diagnostics surfaces per-entry errors and orphan lines as warnings
	Diagnostics bool
}

// OptionsFromConfig builds Options for workDir from a loaded configuration
func OptionsFromConfig(cfg *config.Config, workDir string) Options {
	return Options{
		WorkDir:       workDir,
		StructureFile: cfg.StructureFile,
		Protected:     cfg.ProtectedNames(),
		Diagnostics:   cfg.Diagnostics,
	}
}

// resolve fills in defaults
func (o Options) resolve() (Options, error) {
	if o.WorkDir == "" {
		o.WorkDir = "."
	}
	abs, err := filepath.Abs(o.WorkDir)
	if err != nil {
		return o, err
	}
	o.WorkDir = abs
	if o.FS == nil {
		o.FS = filesystem.NewOS(o.WorkDir)
	}
	defaults := config.Default()
	if o.StructureFile == "" {
		o.StructureFile = defaults.StructureFile
	}
	o.Protected = protectedFiles(o.StructureFile, o.Protected, defaults.EntryPoint)
	return o, nil
}

// protectedFiles lists the structure file first, then extras, then the entry
// point, without blanks or duplicates
func protectedFiles(structureFile string, extras []string, entryPoint string) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		name = strings.TrimPrefix(filepath.ToSlash(filepath.Clean(name)), "./")
		if seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	add(structureFile)
	for _, name := range extras {
		add(name)
	}
	add(entryPoint)
	return names
}
