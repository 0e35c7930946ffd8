package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/Caqil/scanpro-annotate/document"
	"github.com/Caqil/scanpro-annotate/overlay"
)

func openCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "open",
		Help: "open a pdf document for annotation",
		Func: func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(errors.New("missing document path"))
				return
			}

			path := c.Args[0]
			doc, err := document.Open(path)
			if err != nil {
				c.Err(fmt.Errorf("failed to open %s: %w", path, err))
				return
			}

			ctx.Doc = doc
			ctx.DocPath = path
			ctx.Overlay = overlay.NewEngine(doc.Pages())

			if err := ctx.refreshTransform(); err != nil {
				c.Err(err)
				return
			}

			c.Printf("opened %s (%d pages)\n", path, doc.PageCount())
			c.SetPrompt(ctx.prompt())
		},
	}
}
