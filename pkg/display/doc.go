// Package display renders projbuild's terminal output: the live directory
// tree, the parsed path list with its diagnostics table, machine-readable
// exports of a parsed structure, create and cleanup reports, and the
// markdown format guide.
//
// Renderers return strings; writing them is left to the caller.
package display
