package valk

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "VS Code keybinding cards and project config files"
	MsgKeysShort       = "Print VS Code keybinding reference cards"
	MsgCreateShort     = "Write a project config file"
	MsgGenConfigShort  = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Status messages
	MsgVersionFormat   = "valk version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten   = "Wrote configuration to %s"
	MsgConfigExists    = "%s already exists, not overwriting"
	MsgManPagesWritten = "Wrote man pages to %s"

	// Error messages
	MsgErrStyles = "failed to load styles from %s: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/valk/config.toml)"
	MsgFlagAll      = "Print every category"
	MsgFlagMarkdown = "Render cards as markdown tables"
	MsgFlagAtomic   = "Download .gitignore to a temporary file and rename it when complete"
	MsgFlagURL      = "Override the .gitignore template URL"
	MsgFlagWrite    = "Write the configuration to the user config file"
	MsgFlagManDir   = "Directory to write man pages to"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/keys-long.txt
	msgKeysLongRaw string
	MsgKeysLong    = strings.TrimSpace(msgKeysLongRaw)

	//go:embed msgs/keys-example.txt
	msgKeysExampleRaw string
	MsgKeysExample    = strings.TrimRight(msgKeysExampleRaw, "\n")

	//go:embed msgs/create-long.txt
	msgCreateLongRaw string
	MsgCreateLong    = strings.TrimSpace(msgCreateLongRaw)

	//go:embed msgs/create-example.txt
	msgCreateExampleRaw string
	MsgCreateExample    = strings.TrimRight(msgCreateExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
