// Package pathiter resolves a user supplied path argument into a lazy
// sequence of filesystem paths.
//
// A pattern is classified once, before any item is produced:
//
//   - an existing regular file yields exactly itself
//   - any other existing entry (usually a directory) is walked depth first,
//     the root included
//   - anything else is expanded as a glob pattern
//
// Existing entries always win over pattern interpretation, so a file
// literally named "a[1].txt" resolves to itself rather than to "a1.txt".
//
// The sequence is pulled one Item at a time and each Item carries either a
// path or the error that prevented producing it. Per-item errors never end
// the sequence; only an invalid glob pattern fails up front, in Resolve.
//
// Walk policy: sibling order is whatever the filesystem returns, symlinks
// below the root are reported but not followed, and a symlinked root is
// followed. Glob policy: entries are matched in name order and '**' does
// not descend into symlinked directories.
package pathiter
