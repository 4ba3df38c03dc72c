// Command webpify batch-converts raster images to WebP.
//
// The root command performs the conversion. Paths given on the command
// line may be single image files or directories; directories expand to
// their convertible entries, optionally recursively. Subcommands cover
// configuration scaffolding, supported-format listing, and version
// reporting.
package main
