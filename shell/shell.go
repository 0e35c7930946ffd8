// Package shell is the interactive command line for annotating and signing
// PDF documents.
package shell

import (
	"errors"
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/Caqil/scanpro-annotate/api"
	"github.com/Caqil/scanpro-annotate/config"
	"github.com/Caqil/scanpro-annotate/document"
	"github.com/Caqil/scanpro-annotate/ink"
	"github.com/Caqil/scanpro-annotate/overlay"
	"github.com/Caqil/scanpro-annotate/version"
)

var ErrNoDocument = errors.New("no document open")

// ShellCtxt is the state shared by all shell commands.
type ShellCtxt struct {
	Config  config.Config
	Client  *api.Client
	Overlay *overlay.Engine
	Ink     *ink.Engine
	Doc     *document.Document
	DocPath string
}

func (ctx *ShellCtxt) prompt() string {
	if ctx.Doc == nil {
		return "[-]>"
	}
	return fmt.Sprintf("[%s:%d]>", ctx.DocPath, ctx.Overlay.CurrentPage()+1)
}

// requireDocument returns the overlay engine or an error when nothing is open.
func (ctx *ShellCtxt) requireDocument() (*overlay.Engine, error) {
	if ctx.Doc == nil || ctx.Overlay == nil {
		return nil, ErrNoDocument
	}
	return ctx.Overlay, nil
}

// refreshTransform recomputes the render transform for the current page so
// that the page is rendered Config.RenderWidth wide at the viewport origin.
func (ctx *ShellCtxt) refreshTransform() error {
	page, err := ctx.Doc.Page(ctx.Overlay.CurrentPage())
	if err != nil {
		return err
	}

	width, height, err := ctx.Doc.RenderSize(ctx.Overlay.CurrentPage(), ctx.Config.RenderWidth)
	if err != nil {
		return err
	}

	ctx.Overlay.SetRenderTransform(overlay.RenderTransform{
		Scale:      width / page.Width,
		PageLeft:   0,
		PageTop:    0,
		PageWidth:  width,
		PageHeight: height,
	})
	ctx.Overlay.SetViewport(overlay.Viewport{Width: width, Height: height})
	return nil
}

func createElementCompleter(ctx *ShellCtxt) func(args []string) []string {
	return func(args []string) []string {
		if ctx.Overlay == nil {
			return nil
		}
		var ids []string
		for el := range ctx.Overlay.ElementsForPage(ctx.Overlay.CurrentPage()) {
			ids = append(ids, el.ID)
		}
		return ids
	}
}

// RunShell starts the interactive shell, or runs a single command when args
// are given.
func RunShell(ctx *ShellCtxt, args []string) error {
	shell := ishell.New()
	shell.Println(fmt.Sprintf("MegaPDF sign shell [version: %s]", version.Version))
	shell.SetPrompt(ctx.prompt())

	shell.AddCmd(openCmd(ctx))
	shell.AddCmd(infoCmd(ctx))
	shell.AddCmd(pagesCmd(ctx))
	shell.AddCmd(pageCmd(ctx))
	shell.AddCmd(zoomCmd(ctx))
	shell.AddCmd(addCmd(ctx))
	shell.AddCmd(lsCmd(ctx))
	shell.AddCmd(selectCmd(ctx))
	shell.AddCmd(mvCmd(ctx))
	shell.AddCmd(resizeCmd(ctx))
	shell.AddCmd(rmCmd(ctx))
	shell.AddCmd(clearCmd(ctx))
	shell.AddCmd(drawCmd(ctx))
	shell.AddCmd(flattenCmd(ctx))
	shell.AddCmd(signCmd(ctx))
	shell.AddCmd(tokenCmd(ctx))

	if len(args) > 0 {
		return shell.Process(args...)
	}

	shell.Run()
	return nil
}
