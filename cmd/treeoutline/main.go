// Command treeoutline adds a radial outline to the snowmen tree texture.
//
// There are no command line parameters. To change the output, edit the
// constants below and run it again.
package main

import (
	"fmt"
	"os"
	"time"

	"fortio.org/log"
	outline "github.com/esimov/treeoutline/core"
	"github.com/esimov/treeoutline/utils"
)

const (
	LINE_WIDTH = "16"

	// The image is square, so x = y = IMAGE_SIZE.
	IMAGE_SIZE = 512

	LINE_COLOR = "black"

	// The snowmen tree skirt expects exactly this number of outline segments.
	COUNT_OF_LINES = 16

	IMAGE_FILENAME_SRC  = "orig_treeTexture.png"
	IMAGE_FILENAME_DEST = "treeTexture.png"

	// TOOL is the ImageMagick binary ("convert", or "magick" with ImageMagick 7).
	// Set it to outline.BuiltinTool to draw without ImageMagick.
	TOOL = "convert"
)

func main() {
	cfg := outline.Config{
		ImageSize:    IMAGE_SIZE,
		LineWidth:    LINE_WIDTH,
		LineColor:    LINE_COLOR,
		CountOfLines: COUNT_OF_LINES,
		Source:       IMAGE_FILENAME_SRC,
		Destination:  IMAGE_FILENAME_DEST,
		Tool:         TOOL,
	}

	start := time.Now()

	var ind *utils.ProgressIndicator
	if utils.IsTerminal(os.Stderr) {
		ind = utils.NewProgressIndicator(os.Stderr, "Drawing outline...", time.Millisecond*100)
		ind.Start()
	}

	err := outline.NewRenderer(cfg).Render(cfg)
	if ind != nil {
		if err != nil {
			ind.StopMsg = fmt.Sprintf("Drawing outline... %sfailed ✗%s\n", utils.ErrorColor, utils.DefaultColor)
		} else {
			ind.StopMsg = fmt.Sprintf("Drawing outline... %sfinished%s\n", utils.SuccessColor, utils.DefaultColor)
		}
		ind.Stop()
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	// If the tool failed, it already said so. Its exit status is not checked.
	log.LogVf("%d segments sent to %s for %s in %.2fs",
		cfg.CountOfLines, cfg.Tool, cfg.Destination, time.Since(start).Seconds())
}
