/*
Package outline draws a radial outline over a square texture image.

The outline is made of CountOfLines straight segments joining evenly spaced
points of the circle inscribed in the image. The segments are handed to an
ImageMagick compatible tool as a list of draw instructions:

	convert orig_treeTexture.png -stroke black -strokewidth 16 \
		-draw "line 256,512 353.9669...,492.5131..." ... treeTexture.png

or drawn in process with gg when the tool is set to BuiltinTool.

	cfg := outline.DefaultConfig()
	if err := outline.NewRenderer(cfg).Render(cfg); err != nil {
		log.Fatalf("%v", err)
	}
*/
package outline
