package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/richinsley/texfmt/options"
	"github.com/richinsley/texfmt/source"
)

// describeFiles loads every file named on the command line and prints the
// texture description it maps to.
func describeFiles(ctx *cli.Context, opts *options.PreviewOptions) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return cli.NewExitError("info: no files specified", 1)
	}

	sampler, err := opts.Sampler()
	if err != nil {
		return err
	}
	srcOpts := opts.SourceOptions(sampler)

	var failed int
	for _, path := range ctx.Args() {
		p, err := source.LoadFile(context.Background(), path, srcOpts)
		if err != nil {
			logger.Errorf("%s: %v", path, err)
			failed++
			continue
		}
		if err := writeDescription(os.Stdout, path, p); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("info: %d of %d file(s) could not be loaded", failed, ctx.NArg())
	}
	return nil
}

func writeDescription(w io.Writer, path string, p *source.Pixels) error {
	d := p.Desc

	texelSize, err := d.TexelSize()
	if err != nil {
		return err
	}
	rowBytes, err := d.RowBytes()
	if err != nil {
		return err
	}
	byteSize, err := d.ByteSize()
	if err != nil {
		return err
	}
	alignment, err := d.UnpackAlignment()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Type", fmt.Sprintf("%s (%s)", d.Type, glHex(d.Type))})
	table.Append([]string{"Internal format", fmt.Sprintf("%s (%s)", d.Internal, glHex(d.Internal))})
	table.Append([]string{"Pixel format", fmt.Sprintf("%s (%s)", d.Format, glHex(d.Format))})
	table.Append([]string{"Pixel type", fmt.Sprintf("%s (%s)", d.PixelType, glHex(d.PixelType))})
	table.Append([]string{"Size", fmt.Sprintf("%dx%dx%d", d.Width, d.Height, d.Depth)})
	table.Append([]string{"Layers", strconv.Itoa(d.Layers())})
	table.Append([]string{"Texel bytes", strconv.Itoa(texelSize)})
	table.Append([]string{"Row bytes", strconv.Itoa(rowBytes)})
	table.Append([]string{"Unpack alignment", strconv.Itoa(int(alignment))})
	table.Append([]string{"Total bytes", strconv.Itoa(byteSize)})
	table.Append([]string{"Sampler", d.Sampler.String()})
	table.Render()

	_, err = fmt.Fprintf(w, "%s\n%s\n", path, buf.String())
	return err
}
