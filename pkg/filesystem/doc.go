// Package filesystem provides filesystem implementations for projbuild.
//
// This package contains implementations of the types.FS interface: an OS
// filesystem rooted at the working directory and an afero-backed filesystem
// used by tests.
package filesystem
