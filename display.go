package threadchart

import (
	"errors"
	"os/exec"
	"runtime"
)

var ErrNoViewer = errors.New("no image viewer available")

// Displayer shows a saved chart to the user.
type Displayer interface {
	Display(path string) error
}

// DisplayFunc adapts an ordinary function to a Displayer.
type DisplayFunc func(path string) error

func (f DisplayFunc) Display(path string) error {
	return f(path)
}

// SystemViewer opens images with the desktop's default application. It
// does not wait for the viewer to exit.
type SystemViewer struct{}

func (SystemViewer) Display(path string) error {
	name, args := viewerCommand(runtime.GOOS)
	bin, err := exec.LookPath(name)
	if err != nil {
		return ErrNoViewer
	}
	cmd := exec.Command(bin, append(args, path)...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func viewerCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
