package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func streakCmd(flags *globalFlags, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Show the current win streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), flags, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d\n", s.svc.Streak(cmd.Context()).Count)
			return nil
		},
	}
}
