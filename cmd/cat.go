package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catCmd represents the cat command
var catCmd = &cobra.Command{
	Use:   "cat <archive> <name>",
	Short: "Write one entry's payload to stdout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := setupCommand(cmd, args)

		ar, err := openArchive(cmd, s, args[0], false)
		if err != nil {
			return err
		}

		data, err := ar.File(args[1])
		if err != nil {
			return err
		}

		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write payload: %w", err)
		}

		return nil
	},
}

func init() {
	Root.AddCommand(catCmd)
}
