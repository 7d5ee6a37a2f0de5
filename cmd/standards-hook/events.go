package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/standards-hook/internal/hook"
	"github.com/conn-castle/standards-hook/internal/messages"
)

func newEventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.EventsUse,
		Short: messages.EventsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subs := hook.SubscribedEvents()
			out := cmd.OutOrStdout()
			for _, event := range hook.SortedEvents() {
				if _, err := fmt.Fprintf(out, messages.EventsLineFmt, event, subs[event].HandlerName); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
