package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/archivetools/untar"
	"github.com/spf13/cobra"
)

// readArchive loads an archive from a local path or an http(s) URL.
func readArchive(ctx context.Context, l *slog.Logger, src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return untar.Fetch(ctx, l, src)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	return data, nil
}

// openArchive combines readArchive with the shared scan flags.
func openArchive(cmd *cobra.Command, s setup, src string, keepMetadata bool) (*untar.Archive, error) {
	data, err := readArchive(cmd.Context(), s.log, src)
	if err != nil {
		return nil, err
	}

	raw := cmd.Flag("raw").Value.String() == "true"

	ar, err := untar.Open(data, untar.Options{
		Raw:          raw,
		KeepMetadata: keepMetadata,
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("opened archive", "src", src, "entries", len(ar.Entries()))

	return ar, nil
}
