// Package types defines the data model and interfaces shared across projbuild.
// This includes the SourceLine arena produced by parsing a structure file,
// the ResolvedPath list consumed by the builder, the create/cleanup reports,
// and the FS and Confirmer interfaces the pipeline depends on.
package types
