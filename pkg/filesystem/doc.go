// Package filesystem provides filesystem implementations for pathglob.
//
// This package contains implementations of the types.FS interface:
// the standard OS filesystem and an afero-backed one, used with
// afero.NewMemMapFs for in-memory trees in tests.
package filesystem
