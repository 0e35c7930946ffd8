package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abiosoft/ishell"
	flag "github.com/ogier/pflag"

	"github.com/Caqil/scanpro-annotate/api"
)

func signCmd(ctx *ShellCtxt) *ishell.Cmd {
	return &ishell.Cmd{
		Name: "sign",
		Help: "upload the document and elements to the sign service",
		LongHelp: `Usage: sign [options]

Options:
  --ocr          make the signed output searchable
  --lang=<code>  OCR language (default from config)`,
		Func: func(c *ishell.Context) {
			flagSet := flag.NewFlagSet("sign", flag.ContinueOnError)
			ocr := flagSet.Bool("ocr", ctx.Config.PerformOCR, "perform OCR")
			lang := flagSet.String("lang", ctx.Config.OCRLanguage, "OCR language")
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
				c.Err(errors.New("no elements to sign with"))
				return
			}
			if ctx.Client == nil {
				c.Err(errors.New("no API client configured"))
				return
			}

			file, err := os.Open(ctx.DocPath)
			if err != nil {
				c.Err(fmt.Errorf("failed to open document: %w", err))
				return
			}
			defer file.Close()

			c.Printf("signing: [%s]...\n", ctx.DocPath)

			elements, pages := engine.Serialize()
			result, err := ctx.Client.Sign(context.Background(), filepath.Base(ctx.DocPath), file,
				elements, pages, api.SignOptions{PerformOCR: *ocr, OCRLanguage: *lang})
			if err != nil {
				c.Err(fmt.Errorf("sign failed: %w", err))
				return
			}

			c.Println("sign OK")
			c.Printf("file: %s\n", result.FileURL)
			if warning := result.Warning(); warning != "" {
				c.Printf("warning: %s\n", warning)
			}
			if result.SearchablePDFURL != "" {
				c.Printf("searchable: %s\n", result.SearchablePDFURL)
			}
		},
	}
}
