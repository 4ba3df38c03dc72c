// Package preflight validates directory-to-directory conversions before
// any file is touched: the input must be a readable directory, the output
// directory must exist (it is created when absent) and be writable, and
// the output filesystem must have headroom for the converted tree. The
// space check is advisory against running out of disk mid-batch, not a
// guarantee.
package preflight
