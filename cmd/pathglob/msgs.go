package pathglob

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve files, directories and globs to paths"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"
	MsgGenConfigShort  = "Print a configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/pathglob/config.toml)"
	MsgFlagFormat    = "Output format: auto, term, text, json, yaml"
	MsgFlagNull      = "Separate paths with NUL instead of newline"
	MsgFlagShowMode  = "Announce how each pattern was resolved"
	MsgFlagErrors    = "What to do with unreadable paths: report, ignore, abort"
	MsgFlagEffective = "Print the effective configuration instead of the defaults"
	MsgFlagManDir    = "Write one page per command into this directory instead of stdout"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrFailures   = "%d path(s) could not be resolved"
	MsgErrInvalid    = "%d pattern(s) are invalid"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
