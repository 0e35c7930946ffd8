package shell

import (
	"errors"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/Caqil/scanpro-annotate/model"
	"github.com/Caqil/scanpro-annotate/overlay"
)

func addCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "add",
		Help: "add an element to the current page",
		LongHelp: `Usage: add <signature|text|stamp|initials|name|date> [options]

Options:
  --text=<s>        payload for text elements
  --width=<w>       element width
  --height=<h>      element height
  --font-size=<s>   font size for text elements
  --font=<family>   font family for text elements`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("add", flag.ContinueOnError)
			text := flagSet.String("text", "", "element text")
			width := flagSet.Float64("width", 0, "element width")
			height := flagSet.Float64("height", 0, "element height")
			fontSize := flagSet.Float64("font-size", 0, "font size")
			font := flagSet.String("font", "", "font family")
			if err := flagSet.Parse(c.Args); err != nil {
				if err != flag.ErrHelp {
					c.Err(err)
				}
				return
			}

			argRest := flagSet.Args()
			if len(argRest) < 1 {
				c.Err(errors.New("missing element type"))
				return
			}

			engine, err := ctx.requireDocument()
			if err != nil {
				c.Err(err)
				return
			}

			kind := model.ElementKind(strings.ToLower(argRest[0]))
			if !kind.Valid() {
				c.Err(errors.New("unknown element type"))
				return
			}

			var opts []overlay.ElementOption
			if *text != "" {
				opts = append(opts, overlay.WithPayload(*text))
			}
			if *width > 0 && *height > 0 {
				opts = append(opts, overlay.WithSize(*width, *height))
			}
			if *fontSize > 0 || *font != "" {
				opts = append(opts, overlay.WithFont(*fontSize, *font))
			}

			el := engine.AddElement(kind, opts...)
			if el == nil {
				c.Err(errors.New("failed to add element"))
				return
			}

			c.Printf("added %s at (%.1f, %.1f)\n", el.ID, el.Position.X, el.Position.Y)
		},
	}
}
