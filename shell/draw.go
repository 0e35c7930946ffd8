package shell

import (
	"errors"
	"fmt"
	"os"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/Caqil/scanpro-annotate/encoding/strokes"
	"github.com/Caqil/scanpro-annotate/ink"
	"github.com/Caqil/scanpro-annotate/model"
	"github.com/Caqil/scanpro-annotate/overlay"
)

func drawCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "draw",
		Help: "render a recorded stroke session as a signature element",
		LongHelp: `Usage: draw [options] <strokes_file>

Renders a recorded freehand session to an image and attaches it to the
selected signature element, or adds a new one.

Options:
  --width=<w>   canvas width in pixels (default: 400)
  --height=<h>  canvas height in pixels (default: 200)`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("draw", flag.ContinueOnError)
			width := flagSet.Int("width", 400, "canvas width")
			height := flagSet.Int("height", 200, "canvas height")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}
			argRest := flagSet.Args()
			if len(argRest) < 1 {
				c.Err(errors.New("missing strokes file"))
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			content, err := os.ReadFile(argRest[0])
			if err != nil {
				c.Err(fmt.Errorf("failed to read strokes file: %w", err))
				return
			}

			session := strokes.Session{}
			if err := session.UnmarshalBinary(content); err != nil {
				c.Err(fmt.Errorf("failed to decode strokes file: %w", err))
				return
			}

			opts := ink.DefaultOptions()
			if ctx.Config.Ink.MinWidth > 0 {
				opts.MinWidth = ctx.Config.Ink.MinWidth
			}
			if ctx.Config.Ink.MaxWidth > 0 {
				opts.MaxWidth = ctx.Config.Ink.MaxWidth
			}
			if ctx.Config.Ink.VelocityFilterWeight > 0 {
				opts.VelocityFilterWeight = ctx.Config.Ink.VelocityFilterWeight
			}

			pad := ink.NewEngine(opts)
			pad.Resize(*width, *height, false)
			pad.Replay(session)
			ctx.Ink = pad
			if pad.Empty() {
				c.Err(errors.New("stroke session is empty"))
				return
			}

			payload := pad.ExportImage(ink.FormatPNG, 0)

			selected := engine.Selected()
			if selected != "" {
				if el, ok := engine.Element(selected); ok && el.Kind.HasImagePayload() {
					engine.SetPayload(selected, payload)
					c.Printf("updated %s\n", selected)
					return
				}
			}

			el := engine.AddElement(model.Signature, overlay.WithPayload(payload))
			if el == nil {
				c.Err(errors.New("failed to add signature element"))
				return
			}
			c.Printf("added %s\n", el.ID)
		},
	}
}
