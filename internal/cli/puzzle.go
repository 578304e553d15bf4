package cli

import (
	"github.com/spf13/cobra"
)

func puzzleCmd(flags *globalFlags, opts Options) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Show the clue for a day without playing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), flags, opts)
			if err != nil {
				return err
			}
			defer s.Close()

			view, err := s.applyDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			printHeader(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "play as if today were this day (YYYY-MM-DD)")
	return cmd
}
