// Package export renders the circle layer to static formats.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/san-kum/bgcircles/internal/scene"
)

// TransitionMs is the duration of the eased scale transition.
const TransitionMs = 2000

const circleClass = "bgc-circle"

// Layer carries the static styling of the background layer.
type Layer struct {
	Color      string
	Background string
	ZIndex     int
	ClassName  string
}

func LayerFromOptions(o scene.Options) Layer {
	return Layer{
		Color:      o.Color,
		Background: o.Background,
		ZIndex:     o.ZIndex,
		ClassName:  o.ClassName,
	}
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG draws snap as a fixed, click-through SVG layer. Each circle is
// centered on its position; its scale is a CSS transform so that a browser
// eases changes between frames.
func WriteSVG(w io.Writer, snap scene.Snapshot, layer Layer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := int(math.Round(snap.Viewport.Width))
	height := int(math.Round(snap.Viewport.Height))

	class := strings.TrimSpace("bgc-layer " + layer.ClassName)
	canvas.Start(width, height,
		fmt.Sprintf(`class="%s"`, class),
		fmt.Sprintf(`style="position:fixed;inset:0;overflow:hidden;pointer-events:none;z-index:%d"`, layer.ZIndex),
		`aria-hidden="true"`,
	)
	canvas.Style("text/css", fmt.Sprintf(
		".%s{transform-box:fill-box;transform-origin:center;transition:transform %dms ease-in-out}",
		circleClass, TransitionMs))
	if layer.Background != "" {
		canvas.Rect(0, 0, width, height, "fill:"+layer.Background)
	}

	canvas.Gstyle("fill:" + layer.Color)
	for _, c := range snap.Circles {
		canvas.Gtransform(fmt.Sprintf("translate(%.2f %.2f)", c.X, c.Y))
		canvas.Circle(0, 0, int(math.Round(c.Size/2)),
			fmt.Sprintf(`class="%s"`, circleClass),
			fmt.Sprintf(`data-id="%d"`, c.ID),
			fmt.Sprintf(`style="fill-opacity:%.3f;transform:scale(%.4f)"`, c.Opacity, c.Scale),
		)
		canvas.Gend()
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}
