package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/tag"
)

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags with a registered constructor",
		Long: `List the tag names known to the registry. Other standard HTML names
and unknown names still work; they produce generic elements.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range tag.DefaultRegistry.Names() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
