// Package types defines the core types and interfaces shared by pathglob
// packages: the read-only FS abstraction the resolver runs on and the
// ResolutionMode enum.
package types
