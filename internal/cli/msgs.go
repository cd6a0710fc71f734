package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Activate installed packages into your environment"
	MsgActivateShort   = "Print the environment changes that activate packages"
	MsgExecShort       = "Run a command with packages activated"
	MsgListShort       = "List installed packages"
	MsgListLong        = "List displays every package version found in the package search roots, highest version first."
	MsgInfoShort       = "Show details of an installed package"
	MsgInfoLong        = "Info resolves a package request and shows its descriptor, the selected variant and the activation commands it runs."
	MsgValidateShort   = "Validate package descriptor files"
	MsgValidateLong    = "Validate loads each descriptor file and reports parse errors, schema violations and invalid versions. The command fails if any file is invalid."
	MsgNewShort        = "Create a descriptor for a new package"
	MsgSnippetShort    = "Output shell integration snippet"
	MsgGenConfigShort  = "Print the default configuration"
	MsgGenConfigLong   = "Print the default configuration with every setting commented out, ready to be saved as the user config file."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"

	// Status messages
	MsgCreatedDescriptor = "Created %s\n"
	MsgConfigWritten     = "Wrote default configuration to %s\n"
	MsgValidationFailed  = "%d of %d descriptors are invalid"

	// Error messages
	MsgErrHelpTopics   = "help topics unavailable"
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrNoCommand    = "no command given after --"
	MsgErrNoPackages   = "no packages given"
	MsgErrNoSubcommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrict       = "Reject empty, relative or missing package roots"
	MsgFlagDedupe       = "Do not add path segments that are already present"
	MsgFlagPackagesPath = "Package search root (repeatable, overrides the configuration)"
	MsgFlagConfig       = "Configuration file (default $XDG_CONFIG_HOME/pkgenv/config.toml)"
	MsgFlagShell        = "Output syntax: bash, zsh, fish or json (default from $SHELL)"
	MsgFlagExplain      = "Describe each applied operation on stderr"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagJSON         = "Shorthand for --format json"
	MsgFlagVersion      = "Version of the new package"
	MsgFlagDir          = "Search root to create the package in (default: first search root)"
	MsgFlagDescriptor   = "Descriptor file name (package.toml, package.yaml or package.json)"
	MsgFlagWrite        = "Write the configuration file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/activate-long.txt
	msgActivateLongRaw string
	MsgActivateLong    = strings.TrimSpace(msgActivateLongRaw)

	//go:embed msgs/activate-example.txt
	msgActivateExampleRaw string
	MsgActivateExample    = strings.TrimRight(msgActivateExampleRaw, "\n")

	//go:embed msgs/exec-long.txt
	msgExecLongRaw string
	MsgExecLong    = strings.TrimSpace(msgExecLongRaw)

	//go:embed msgs/exec-example.txt
	msgExecExampleRaw string
	MsgExecExample    = strings.TrimRight(msgExecExampleRaw, "\n")

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/snippet-long.txt
	msgSnippetLongRaw string
	MsgSnippetLong    = strings.TrimSpace(msgSnippetLongRaw)

	//go:embed msgs/snippet-example.txt
	msgSnippetExampleRaw string
	MsgSnippetExample    = strings.TrimRight(msgSnippetExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
