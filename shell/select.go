package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func selectCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "select",
		Help:      "select element (select again to deselect)",
		Completer: createElementCompleter(ctx),
		Func: func(c *ishell.Context) {
			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			if len(c.Args) == 0 {
				engine.DeselectAll()
				return
			}

			id := c.Args[0]
			if _, ok := engine.Element(id); !ok {
				c.Err(errors.New("element doesn't exist"))
				return
			}

			engine.SelectElement(id)
			if engine.Selected() == id {
				c.Println("selected: ", id)
			} else {
				c.Println("deselected: ", id)
			}
		},
	}
}
