package shell

import (
	"github.com/abiosoft/ishell"
)

func clearCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "clear",
		Help: "remove all elements",
		Func: func(c *ishell.Context) {
			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			count := engine.Len()
			engine.Clear()
			c.Printf("removed %d element(s)\n", count)
		},
	}
}
