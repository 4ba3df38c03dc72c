package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	cctx := newCommandContext(&configFlag)
	opts := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:   "webpify [flags] PATH...",
		Short: "Batch-convert images to WebP",
		Long: `webpify converts raster images (JPEG, PNG, GIF, BMP, TIFF, WebP) to
WebP. Each PATH may be an image file or a directory; directory inputs
expand to their convertible entries. Without --output every converted
file lands beside its source, with --output the results collect under
one directory, mirroring the source tree when --recursive is set.

Existing up-to-date outputs are skipped, so re-running over the same
tree only converts what changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := cctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			opts.inputs = args
			opts.qualitySet = cmd.Flags().Changed("quality")
			opts.concurrencySet = cmd.Flags().Changed("concurrency")
			return runConvert(cmd, cctx, *opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.outputDir, "output", "o", "", "Collect converted files under this directory")
	flags.IntVarP(&opts.quality, "quality", "q", 0, "WebP quality factor, 1-100 (default from config)")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Descend into subdirectories of directory inputs")
	flags.IntVarP(&opts.concurrency, "concurrency", "j", 0, "Conversions per wave (default from config, 0 = auto)")
	flags.BoolVarP(&opts.force, "force", "f", false, "Reconvert even when the output is up to date")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show the conversion plan without converting")
	flags.BoolVar(&opts.jsonOut, "json", false, "Emit the final report as JSON on stdout")
	flags.BoolVar(&opts.quiet, "quiet", false, "Suppress progress output and informational logs")

	rootCmd.AddCommand(newConfigCommand(cctx))
	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
