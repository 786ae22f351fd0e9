// Package testutil provides fixtures shared by pathglob's tests.
//
// Key components:
//   - OSTree and MemTree: declarative directory trees on disk or in an
//     afero.MemMapFs
//   - FaultFS: a types.FS wrapper that injects open, read and stat
//     results per path and counts open directory handles
//   - FakeInfo: an fs.FileInfo with an arbitrary mode
//
// Paths ending in "/" are created as empty directories; anything else is
// a file whose content is its own path.
package testutil
