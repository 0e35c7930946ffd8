package shell

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/Caqil/scanpro-annotate/annotations"
)

func flattenCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "flatten",
		Help: "bake elements into the document locally",
		LongHelp: `Usage: flatten [options] [output_file]

Options:
  --page-numbers   add page numbers to the output`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("flatten", flag.ContinueOnError)
			pageNumbers := flagSet.Bool("page-numbers", false, "add page numbers")
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
			if engine.Len() == 0 {
				c.Err(errors.New("no elements to flatten"))
				return
			}

			output := signedOutputPath(ctx.DocPath, ctx.Config.OutputDir)
			if argRest := flagSet.Args(); len(argRest) > 0 {
				output = argRest[0]
			}

			elements, pages := engine.Serialize()
			flattener := annotations.CreateFlattener(ctx.DocPath, output, elements, pages, annotations.Options{
				AddPageNumbers: *pageNumbers,
			})
			if err := flattener.Generate(); err != nil {
				c.Err(fmt.Errorf("failed to flatten document: %w", err))
				return
			}

			c.Printf("wrote %s\n", output)
		},
	}
}

// signedOutputPath derives "<dir>/<name>-signed.pdf" from the input path.
func signedOutputPath(input, dir string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = ".pdf"
	}
	return filepath.Join(dir, name+"-signed"+ext)
}
