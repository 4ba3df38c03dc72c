// Package scan expands command-line inputs into an ordered conversion
// plan. File inputs map directly to tasks; directory inputs are listed,
// optionally recursively, with the relative structure mirrored under a
// separate output root. Entries excluded during discovery stay in the
// plan as pre-counted skips so run totals always balance.
package scan
