package shell

import (
	"errors"
	"strconv"

	"github.com/abiosoft/ishell"
)

func pageCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "page",
		Help: "go to page",
		Func: func(c *ishell.Context) {
			overlay, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			if len(c.Args) == 0 {
				c.Printf("page %d of %d\n", overlay.CurrentPage()+1, overlay.PageCount())
				return
			}

			n, err := strconv.Atoi(c.Args[0])
			if err != nil || n < 1 || n > overlay.PageCount() {
				c.Err(errors.New("invalid page number"))
				return
			}

			overlay.SetCurrentPage(n - 1)
			if err := ctx.refreshTransform(); err != nil {
				c.Err(err)
				return
			}
			c.SetPrompt(ctx.prompt())
		},
	}
}
