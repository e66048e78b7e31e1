//go:build !windows

package util

// LaunchedFromExplorer reports whether the process was started by
// double-clicking it. Only Windows has that notion.
func LaunchedFromExplorer() bool {
	return false
}
