package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// newProgressBar builds the interactive wave progress bar. It returns nil
// when progress display is off: quiet or JSON runs, empty plans, and
// non-terminal stdout.
func newProgressBar(cmd *cobra.Command, total int, opts convertOptions) *progressbar.ProgressBar {
	if opts.quiet || opts.jsonOut || total == 0 {
		return nil
	}
	if !shouldColorize(cmd.OutOrStdout()) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Converting"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func finishProgressBar(cmd *cobra.Command, bar *progressbar.ProgressBar) {
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())
}
