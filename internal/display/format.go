package display

import (
	"fmt"
	"strings"
)

// Plural returns "1 camera", "2 cameras". Words ending in s take "es".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	if strings.HasSuffix(word, "s") {
		return fmt.Sprintf("%d %ses", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// ShortPath trims the middle of long paths for log lines, keeping the head
// and the last max/2 characters (e.g. "P:/external/…/sq010_sh020_cam.nk").
func ShortPath(path string, max int) string {
	if max < 8 || len(path) <= max {
		return path
	}
	tail := max / 2
	head := max - tail - 1
	return path[:head] + "…" + path[len(path)-tail:]
}
