package outline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"fortio.org/log"
)

// Renderer loads the source image, strokes every outline segment and
// writes the destination image.
type Renderer interface {
	Render(cfg Config) error
}

// NewRenderer returns the in-process Canvas renderer for BuiltinTool and
// an external Magick invocation for every other tool name.
func NewRenderer(cfg Config) Renderer {
	if cfg.Tool == BuiltinTool {
		return &Canvas{}
	}
	return &Magick{}
}

// Magick runs an ImageMagick compatible command line tool once per render.
type Magick struct {
	// Stdout and Stderr receive the tool's output. Nil means the
	// corresponding stream of the current process.
	Stdout io.Writer
	Stderr io.Writer
}

// Render launches the tool and waits for it to finish. Only a failure to
// launch the tool is returned: the tool reports its own errors on its
// output streams and its exit status is not inspected.
func (m *Magick) Render(cfg Config) error {
	args := Arguments(cfg)
	log.LogVf("Running %s with %d draw instructions", args[0], cfg.CountOfLines)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = m.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = m.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("unable to launch %s: %w", args[0], err)
	}

	var exitErr *exec.ExitError
	if err := cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("waiting for %s: %w", args[0], err)
	}
	return nil
}
