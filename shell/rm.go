package shell

import (
	"errors"

	"github.com/abiosoft/ishell"
)

func rmCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name:      "rm",
		Help:      "delete element",
		Completer: createElementCompleter(ctx),
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(errors.New("missing element id"))
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			for _, id := range c.Args {
				if _, ok := engine.Element(id); !ok {
					c.Err(errors.New("element doesn't exist"))
					continue
				}
				engine.RemoveElement(id)
				c.Println("deleted: ", id)
			}
		},
	}
}
