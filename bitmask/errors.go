package bitmask

import "errors"

// ErrUnsupportedWidth indicates that the requested bit width exceeds the
// largest reference case the dispatcher knows how to build.
// Usage: if errors.Is(err, ErrUnsupportedWidth) { /* report required width */ }.
var ErrUnsupportedWidth = errors.New("bitmask: unsupported width")
