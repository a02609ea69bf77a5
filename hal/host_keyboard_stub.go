//go:build !tinygo && !cgo

package hal

func pollKeys(_ *hostHAL) {
	// No keyboard input without the window backend.
}
