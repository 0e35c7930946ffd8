package shell

import (
	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"
)

func lsCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "ls",
		Help: "list elements on the current page",
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
			all := flagSet.BoolP("all", "a", false, "list elements on every page")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			pages := []int{engine.CurrentPage()}
			if *all {
				pages = pages[:0]
				for i := 0; i < engine.PageCount(); i++ {
					pages = append(pages, i)
				}
			}

			for _, page := range pages {
				for el := range engine.ElementsForPage(page) {
					marker := " "
					if el.ID == engine.Selected() {
						marker = "*"
					}
					c.Printf("%s [%s]\tp%d\t(%.1f, %.1f)\t%.0fx%.0f\t%s\n",
						marker, el.Kind, el.PageIndex+1, el.Position.X, el.Position.Y,
						el.Size.Width, el.Size.Height, el.ID)
				}
			}
		},
	}
}
