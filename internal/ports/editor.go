package ports

import "os/exec"

// EditorOpener opens paths in the user's preferred editor.
type EditorOpener interface {
	// OpenFile opens the given file or directory, blocking until the
	// editor exits. It honors $EDITOR with sensible fallbacks.
	OpenFile(path string) error

	// Command returns the exec.Cmd that OpenFile would run, for
	// integration with bubbletea's ExecProcess.
	Command(path string) (*exec.Cmd, error)
}
