package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func resizeCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "resize",
		Help:      "resize element",
		Completer: createElementCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(errors.New("usage: resize <id> <width> <height>"))
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			id := c.Args[0]
			width, errW := strconv.ParseFloat(c.Args[1], 64)
			height, errH := strconv.ParseFloat(c.Args[2], 64)
			if errW != nil || errH != nil {
				c.Err(errors.New("invalid size"))
				return
			}

			el, ok := engine.Element(id)
			if !ok {
				c.Err(errors.New("element doesn't exist"))
				return
			}

			t := engine.RenderTransform()
			ev := pointerForResize(t, el.Position, width, height)
			engine.BeginResize(id, ev)
			engine.ContinueResize(ev)
			engine.EndGesture()

			resized, _ := engine.Element(id)
			c.Printf("resized %s to %.0fx%.0f\n", id, resized.Size.Width, resized.Size.Height)
		},
	}
}
