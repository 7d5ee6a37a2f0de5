package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/standards-hook/internal/config"
	"github.com/conn-castle/standards-hook/internal/hook"
	"github.com/conn-castle/standards-hook/internal/layout"
	"github.com/conn-castle/standards-hook/internal/messages"
	"github.com/conn-castle/standards-hook/internal/terminal"
	"github.com/conn-castle/standards-hook/internal/xcopy"
)

var hookSystem xcopy.System = xcopy.RealSystem{}
var packageDirFunc = layout.PackageDir

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := hook.Event(strings.TrimSpace(args[0]))
			sub, ok := hook.SubscribedEvents()[event]
			if !ok {
				return fmt.Errorf(messages.RunUnknownEventFmt, args[0], joinEvents(hook.SortedEvents()))
			}
			return runHook(cmd, flags, sub.Handler)
		},
	}
}

func newPostInstallCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PostInstallUse,
		Short: messages.PostInstallShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, flags, hook.PostInstall)
		},
	}
}

// runHook resolves settings and layout, runs handler, and reports the outcome.
// Copy failures only fail the command in strict mode.
func runHook(cmd *cobra.Command, flags *rootFlags, handler hook.Handler) error {
	cfg, lay, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}
	report := handler(cmd.Context(), hookSystem, lay)
	return reportResult(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, cfg)
}

// resolveSettings layers environment and flag overrides, locates the package
// directory, loads its config file, and resolves the project root.
func resolveSettings(cmd *cobra.Command, flags *rootFlags) (config.Config, layout.Layout, error) {
	envOverrides, err := config.LoadEnv(nil)
	if err != nil {
		return config.Config{}, layout.Layout{}, err
	}
	overrides := envOverrides.Merge(flags.overrides(cmd))

	var packageDir string
	if strings.TrimSpace(overrides.PackageDir) != "" {
		packageDir, err = layout.ExpandPath(overrides.PackageDir)
	} else {
		packageDir, err = packageDirFunc()
	}
	if err != nil {
		return config.Config{}, layout.Layout{}, err
	}

	cfg, err := config.Load(packageDir, overrides)
	if err != nil {
		return config.Config{}, layout.Layout{}, err
	}
	lay, err := layout.Resolve(packageDir, overrides.ProjectRoot, cfg.InstallDepth)
	if err != nil {
		return config.Config{}, layout.Layout{}, err
	}
	return cfg, lay, nil
}

// reportResult prints one line per step and decides the exit status.
func reportResult(stdout io.Writer, stderr io.Writer, report hook.Report, cfg config.Config) error {
	if !cfg.Quiet {
		warn := warnColor(stderr)
		for _, result := range report.Results {
			if result.Err != nil {
				_, _ = warn.Fprintf(stderr, messages.HookStepFailedFmt, result.Source, result.Dest, result.Err)
				continue
			}
			_, _ = fmt.Fprintf(stdout, messages.HookStepCopiedFmt, result.Source, result.Dest)
		}
	}
	failed := report.Failed()
	if len(failed) == 0 || !cfg.Strict {
		return nil
	}
	if cfg.Quiet {
		return &SilentExitError{Code: 1}
	}
	return fmt.Errorf(messages.HookFailedStepsFmt, len(failed), len(report.Results))
}

// warnColor returns the warning style, uncolored unless w is a terminal.
func warnColor(w io.Writer) *color.Color {
	c := color.New(color.FgYellow)
	if !terminal.IsTerminalWriter(w) {
		c.DisableColor()
	}
	return c
}

func joinEvents(events []hook.Event) string {
	names := make([]string, 0, len(events))
	for _, event := range events {
		names = append(names, string(event))
	}
	return strings.Join(names, ", ")
}
