package imagefile

import (
	"path/filepath"
	"sort"
	"strings"
)

// convertible holds the extensions accepted as conversion sources.
// Matching is case-insensitive.
var convertible = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

// IsImage reports whether path names a convertible image, judged only by
// its extension.
func IsImage(path string) bool {
	_, ok := convertible[strings.ToLower(filepath.Ext(path))]
	return ok
}

// WebPName returns path with its extension replaced by ".webp". A path
// without an extension gets ".webp" appended.
func WebPName(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + ".webp"
}

// OutputPath computes the destination for input. With an output directory
// the file lands there under its own base name; otherwise it lands beside
// the input.
func OutputPath(input, outputDir string) string {
	if outputDir == "" {
		return WebPName(input)
	}
	return filepath.Join(outputDir, WebPName(filepath.Base(input)))
}

// Extensions returns the accepted source extensions, sorted, without the
// leading dot.
func Extensions() []string {
	exts := make([]string, 0, len(convertible))
	for ext := range convertible {
		exts = append(exts, strings.TrimPrefix(ext, "."))
	}
	sort.Strings(exts)
	return exts
}
