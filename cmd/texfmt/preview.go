package main

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/richinsley/texfmt/glfwcontext"
	"github.com/richinsley/texfmt/options"
	"github.com/richinsley/texfmt/preview"
	"github.com/richinsley/texfmt/source"
)

// previewFile opens a window showing the texture built from a single file.
func previewFile(ctx *cli.Context, opts *options.PreviewOptions) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return cli.NewExitError("preview: expected exactly one file", 1)
	}
	path := ctx.Args().First()

	sampler, err := opts.Sampler()
	if err != nil {
		return err
	}

	bg := context.Background()
	p, err := source.LoadFile(bg, path, opts.SourceOptions(sampler))
	if err != nil {
		return err
	}
	logger.Noticef("loaded %s: %s", path, p.Desc)

	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	viewer, err := preview.New(bg, opts, filepath.Base(path), p)
	if err != nil {
		return err
	}
	defer viewer.Shutdown()

	viewer.Run()
	return nil
}
