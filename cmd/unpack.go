package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archivetools/untar"
	"github.com/spf13/cobra"
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <archive>",
	Short: "Write a tarball's files and directories to disk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := setupCommand(cmd, args)

		out := cmd.Flag("out").Value.String()

		ar, err := openArchive(cmd, s, args[0], false)
		if err != nil {
			return err
		}

		for _, e := range ar.Entries() {
			if !filepath.IsLocal(e.Name) {
				s.log.Warn("skip entry that escapes the output dir", "name", e.Name)
				continue
			}

			target := filepath.Join(out, e.Name)

			if e.Kind == untar.Dir {
				if err := os.MkdirAll(target, 0755); err != nil {
					return fmt.Errorf("failed to create dir %s: %w", target, err)
				}
				continue
			}

			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return fmt.Errorf("failed to create dir for %s: %w", target, err)
			}

			if err := os.WriteFile(target, ar.Data(e), 0644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", target, err)
			}

			s.log.Debug("unpacked entry", "name", e.Name, "size", e.Size)
		}

		s.log.Info("unpacked archive", "entries", len(ar.Entries()), "out", out)

		return nil
	},
}

func init() {
	Root.AddCommand(unpackCmd)

	unpackCmd.Flags().String("out", ".", "output directory")
}
