package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/standards-hook/internal/layout"
	"github.com/conn-castle/standards-hook/internal/messages"
	"github.com/conn-castle/standards-hook/internal/xcopy"
)

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.CopyUse,
		Short: messages.CopyShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := layout.ExpandPath(args[0])
			if err != nil {
				return err
			}
			dest, err := layout.ExpandPath(args[1])
			if err != nil {
				return err
			}
			return xcopy.Copy(cmd.Context(), hookSystem, source, dest)
		},
	}
}
