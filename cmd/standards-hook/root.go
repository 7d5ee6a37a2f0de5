package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/standards-hook/internal/config"
	"github.com/conn-castle/standards-hook/internal/hook"
	"github.com/conn-castle/standards-hook/internal/messages"
)

const (
	flagPackageDir   = "package-dir"
	flagProjectRoot  = "project-root"
	flagInstallDepth = "install-depth"
	flagStrict       = "strict"
	flagQuiet        = "quiet"
	flagQuietShort   = "q"
)

// rootFlags holds persistent flag values shared by every subcommand.
type rootFlags struct {
	packageDir   string
	projectRoot  string
	installDepth int
	strict       bool
	quiet        bool
}

// overrides returns only the flags the user set explicitly, so unset flags do
// not mask the config file or environment.
func (f *rootFlags) overrides(cmd *cobra.Command) config.Overrides {
	var out config.Overrides
	flags := cmd.Flags()
	if flags.Changed(flagPackageDir) {
		out.PackageDir = f.packageDir
	}
	if flags.Changed(flagProjectRoot) {
		out.ProjectRoot = f.projectRoot
	}
	if flags.Changed(flagInstallDepth) {
		depth := f.installDepth
		out.InstallDepth = &depth
	}
	if flags.Changed(flagStrict) {
		strict := f.strict
		out.Strict = &strict
	}
	if flags.Changed(flagQuiet) {
		quiet := f.quiet
		out.Quiet = &quiet
	}
	return out
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&flags.packageDir, flagPackageDir, "", messages.FlagPackageDir)
	persistent.StringVar(&flags.projectRoot, flagProjectRoot, "", messages.FlagProjectRoot)
	persistent.IntVar(&flags.installDepth, flagInstallDepth, hook.InstallDepthFromRoot, messages.FlagInstallDepth)
	persistent.BoolVar(&flags.strict, flagStrict, false, messages.FlagStrict)
	persistent.BoolVarP(&flags.quiet, flagQuiet, flagQuietShort, false, messages.FlagQuiet)

	cmd.AddCommand(
		newRunCmd(flags),
		newPostInstallCmd(flags),
		newEventsCmd(),
		newActivateCmd(),
		newCopyCmd(),
	)
	return cmd
}
