package shell

import (
	"github.com/abiosoft/ishell"
)

func infoCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "info",
		Help: "show document info",
		Func: func(c *ishell.Context) {
			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			c.Printf("document:  %s\n", ctx.DocPath)
			c.Printf("pages:     %d\n", engine.PageCount())
			c.Printf("elements:  %d\n", engine.Len())
			c.Printf("view zoom: %.2f\n", engine.ViewZoom())

			t := engine.RenderTransform()
			if t.Valid() {
				c.Printf("rendered:  %.0fx%.0f (scale %.3f)\n", t.PageWidth, t.PageHeight, t.Scale)
			}
		},
	}
}
