// Package testutil provides utilities for testing projbuild components.
//
// Key components:
//   - TestEnvironment: a working directory with a known base name, either
//     in memory (afero) or on disk in a temp directory
//   - NewTestFS: a bare in-memory types.FS
//   - MockConfirmer: a testify mock for the confirmation gate
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when real OS semantics matter
//   - Define structure files inline in the test
package testutil
