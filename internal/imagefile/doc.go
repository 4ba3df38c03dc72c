// Package imagefile classifies paths as convertible images and derives
// WebP output names. All functions are pure: decisions are made from the
// path text alone, never from filesystem state.
package imagefile
