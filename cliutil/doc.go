// Package cliutil provides the leveled Logger the zdcount CLI reports
// progress and warnings through. Core packages never log; they return
// errors or, for advisory progress, call an engine.ProgressFunc sink —
// only the CLI entry point owns an actual logger.
package cliutil
