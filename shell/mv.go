package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func mvCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "mv",
		Help:      "move element to position",
		Completer: createElementCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(errors.New("usage: mv <id> <x> <y>"))
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			id := c.Args[0]
			x, errX := strconv.ParseFloat(c.Args[1], 64)
			y, errY := strconv.ParseFloat(c.Args[2], 64)
			if errX != nil || errY != nil {
				c.Err(errors.New("invalid coordinates"))
				return
			}

			el, ok := engine.Element(id)
			if !ok {
				c.Err(errors.New("element doesn't exist"))
				return
			}

			// Drive the drag exactly the way a pointer would: the gesture
			// keeps the element centered under the cursor.
			t := engine.RenderTransform()
			ev := pointerForMove(t, x, y, el.Size)
			engine.BeginMove(id, ev)
			engine.ContinueMove(ev)
			engine.EndGesture()

			moved, _ := engine.Element(id)
			c.Printf("moved %s to (%.1f, %.1f)\n", id, moved.Position.X, moved.Position.Y)
		},
	}
}
