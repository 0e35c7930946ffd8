package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func zoomCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "zoom",
		Help: "get or set view zoom",
		Func: func(c *ishell.Context) {
			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			if len(c.Args) == 0 {
				c.Printf("%.2f\n", engine.ViewZoom())
				return
			}

			z, err := strconv.ParseFloat(c.Args[0], 64)
			if err != nil {
				c.Err(errors.New("invalid zoom factor"))
				return
			}

			engine.SetViewZoom(z)
			c.Printf("%.2f\n", engine.ViewZoom())
		},
	}
}
