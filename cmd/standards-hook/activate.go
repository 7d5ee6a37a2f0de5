package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/standards-hook/internal/hook"
	"github.com/conn-castle/standards-hook/internal/messages"
)

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ActivateUse,
		Short: messages.ActivateShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			hook.Activate()
		},
	}
}
