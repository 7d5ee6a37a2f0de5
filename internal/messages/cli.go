package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "standards-hook"
	// RootShort is the short description for the root command.
	RootShort       = "Copy bundled coding standards, CI templates, and scripts into the consuming project"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagPackageDir   = "Directory holding the bundled standards, github, and bin trees (default: directory of this executable)"
	FlagProjectRoot  = "Consuming project root (default: install-depth levels above the package directory)"
	FlagInstallDepth = "Directory levels between the package directory and the project root"
	FlagStrict       = "Exit non-zero when any copy step fails"
	FlagQuiet        = "Suppress the copy summary and failure warnings"

	// RunUse is the run command usage.
	RunUse             = "run EVENT"
	RunShort           = "Run the handler subscribed to a package manager lifecycle event"
	RunUnknownEventFmt = "unknown lifecycle event %q (subscribed: %s)"

	// PostInstallUse is the post-install command name.
	PostInstallUse   = "post-install"
	PostInstallShort = "Copy the bundled trees into the project root without naming an event"

	// EventsUse is the events command name.
	EventsUse     = "events"
	EventsShort   = "List the lifecycle events this hook subscribes to"
	EventsLineFmt = "%s -> %s\n"

	// ActivateUse is the activate command name.
	ActivateUse   = "activate"
	ActivateShort = "Plugin activation entry point (does nothing)"

	// CopyUse is the copy command usage.
	CopyUse   = "copy SOURCE DEST"
	CopyShort = "Recursively copy a file or directory without deleting existing destination files"
)
