package types

// ResolutionMode is the strategy chosen for a pattern at resolution time
type ResolutionMode int

const (
	// ModeFile means the pattern names an existing regular file
	ModeFile ResolutionMode = iota

	// ModeDirectory means the pattern names an existing non-regular entry,
	// usually a directory, which is walked recursively
	ModeDirectory

	// ModeGlob means nothing exists at the pattern, so it is expanded as a wildcard expression
	ModeGlob
)

// String returns the lowercase name of the mode
func (m ResolutionMode) String() string {
	switch m {
	case ModeFile:
		return "file"
	case ModeDirectory:
		return "directory"
	case ModeGlob:
		return "glob"
	default:
		return "unknown"
	}
}

// MarshalText lets structured renderers emit the mode by name
func (m ResolutionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
