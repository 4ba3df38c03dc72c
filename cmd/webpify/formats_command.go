package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"webpify/internal/imagefile"
)

var formatNotes = map[string]string{
	"bmp":  "Windows bitmap",
	"gif":  "first frame only",
	"jpg":  "JPEG",
	"jpeg": "JPEG",
	"png":  "PNG",
	"tiff": "TIFF",
	"webp": "re-encoded at the configured quality",
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List convertible input formats",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(formatNotes))
			for _, ext := range imagefile.Extensions() {
				rows = append(rows, []string{"." + ext, formatNotes[ext]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Extension", "Notes"}, rows))
			return nil
		},
	}
}
