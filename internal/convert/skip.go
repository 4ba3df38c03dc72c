package convert

import "os"

// ShouldConvert reports whether input still needs converting. Missing,
// empty, or stale outputs convert. Stat errors convert too: an I/O fault
// must never silently skip a file.
func ShouldConvert(input, output string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return true
	}
	if outInfo.Size() == 0 {
		return true
	}
	inInfo, err := os.Stat(input)
	if err != nil {
		return true
	}
	return inInfo.ModTime().After(outInfo.ModTime())
}
