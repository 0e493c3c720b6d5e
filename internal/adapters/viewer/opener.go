package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Opener implements ports.FileOpener using the platform's default document
// viewer.
type Opener struct{}

// NewOpener creates a new opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens a file with the OS default application.
func (o *Opener) OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
