package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <archive>",
	Short: "List the file and directory entries of a tarball",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := setupCommand(cmd, args)

		all := cmd.Flag("all").Value.String() == "true"

		ar, err := openArchive(cmd, s, args[0], all)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range ar.Entries() {
			fmt.Fprintf(out, "%-4s %8d  %s\n", e.Kind, e.Size, e.Name)
		}

		return nil
	},
}

func init() {
	Root.AddCommand(listCmd)

	listCmd.Flags().Bool("all", false, "keep macOS metadata entries")
}
