package shell

import (
	"github.com/abiosoft/ishell"
)

func pagesCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "pages",
		Help: "list document pages",
		Func: func(c *ishell.Context) {
			overlay, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			for i, page := range overlay.Pages() {
				marker := " "
				if i == overlay.CurrentPage() {
					marker = "*"
				}
				elements := 0
				for range overlay.ElementsForPage(i) {
					elements++
				}
				c.Printf("%s %d\t%.0fx%.0f\t%d element(s)\n", marker, i+1, page.Width, page.Height, elements)
			}
		},
	}
}
