package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/richinsley/texfmt/gltex"
	"github.com/richinsley/texfmt/texture"
)

type enumTable struct {
	name   string
	title  string
	header []string
	rows   func() [][]string
}

var enumTables = []enumTable{
	{"types", "Texture types", []string{"Name", "GL", "Sampler", "Layers"}, typeRows},
	{"internal", "Internal formats", []string{"Name", "GL", "Depth", "sRGB variant"}, internalFormatRows},
	{"formats", "Pixel formats", []string{"Name", "GL", "Components"}, pixelFormatRows},
	{"pixeltypes", "Pixel types", []string{"Name", "GL", "Component bytes"}, pixelTypeRows},
	{"wrap", "Wrap modes", []string{"Name", "GL", "Default"}, wrapModeRows},
	{"min", "Min filters", []string{"Name", "GL", "Mipmapped", "Default"}, minFilterRows},
	{"mag", "Mag filters", []string{"Name", "GL", "Default"}, magFilterRows},
	{"channels", "8-bit formats by channel count", []string{"Channels", "Internal", "Format", "Texel bytes"}, channelRows},
	{"texels", "Texel sizes in bytes", texelHeader(), texelRows},
}

func tableNamesUsage() string {
	var sb strings.Builder
	for _, t := range enumTables {
		fmt.Fprintf(&sb, "  %-11s %s\n", t.name, t.title)
	}
	return sb.String()
}

// listTables prints the enumeration tables named on the command line, or
// all of them.
func listTables(ctx *cli.Context) error {
	setupLogging(ctx)
	return writeTables(os.Stdout, ctx.Args())
}

func writeTables(w io.Writer, names []string) error {
	selected := enumTables
	if len(names) > 0 {
		selected = nil
		for _, name := range names {
			t, ok := findTable(name)
			if !ok {
				return fmt.Errorf("unknown table %q; available tables:\n%s", name, tableNamesUsage())
			}
			selected = append(selected, t)
		}
	}

	for _, t := range selected {
		var buf bytes.Buffer
		table := tablewriter.NewWriter(&buf)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(t.header)
		table.AppendBulk(t.rows())
		table.Render()

		if _, err := fmt.Fprintf(w, "%s\n%s\n", t.title, buf.String()); err != nil {
			return err
		}
	}
	return nil
}

func findTable(name string) (enumTable, bool) {
	for _, t := range enumTables {
		if strings.EqualFold(t.name, name) {
			return t, true
		}
	}
	return enumTable{}, false
}

func glHex[E ~uint32 | ~int32](v E) string {
	return fmt.Sprintf("0x%04X", uint32(v))
}

func mark(b bool) string {
	if b {
		return "*"
	}
	return ""
}

func typeRows() [][]string {
	var rows [][]string
	for _, t := range texture.AllTypes {
		layers := "1"
		switch t {
		case texture.Type3D:
			layers = "depth"
		case texture.TypeCubemap:
			layers = "6"
		}
		rows = append(rows, []string{t.String(), glHex(t), gltex.SamplerType(t), layers})
	}
	return rows
}

func internalFormatRows() [][]string {
	var rows [][]string
	for _, f := range texture.AllInternalFormats {
		variant := ""
		if v := texture.SRGBVariant(f); v != f {
			variant = v.String()
		}
		rows = append(rows, []string{f.String(), glHex(f), mark(f.IsDepth()), variant})
	}
	return rows
}

func pixelFormatRows() [][]string {
	var rows [][]string
	for _, f := range texture.AllPixelFormats {
		components := "-"
		if f != texture.FormatUnknown {
			if n, err := texture.ComponentCount(f); err == nil {
				components = strconv.Itoa(n)
			}
		}
		rows = append(rows, []string{f.String(), glHex(f), components})
	}
	return rows
}

func pixelTypeRows() [][]string {
	var rows [][]string
	for _, t := range texture.AllPixelTypes {
		size := "-"
		if n, err := texture.ComponentByteSize(t); err == nil {
			size = strconv.Itoa(n)
		}
		rows = append(rows, []string{t.String(), glHex(t), size})
	}
	return rows
}

func wrapModeRows() [][]string {
	def := texture.DefaultSampler()
	var rows [][]string
	for _, m := range texture.AllWrapModes {
		rows = append(rows, []string{m.String(), glHex(m), mark(m == def.WrapS)})
	}
	return rows
}

func minFilterRows() [][]string {
	def := texture.DefaultSampler()
	var rows [][]string
	for _, f := range texture.AllMinFilters {
		rows = append(rows, []string{f.String(), glHex(f), mark(f.IsMipmapped()), mark(f == def.Min)})
	}
	return rows
}

func magFilterRows() [][]string {
	def := texture.DefaultSampler()
	var rows [][]string
	for _, f := range texture.AllMagFilters {
		rows = append(rows, []string{f.String(), glHex(f), mark(f == def.Mag)})
	}
	return rows
}

func channelRows() [][]string {
	var rows [][]string
	for channels := 1; channels <= 4; channels++ {
		internal, err := texture.DefaultInternalFormat8(channels)
		if err != nil {
			continue
		}
		format, err := texture.DefaultPixelFormat(channels)
		if err != nil {
			continue
		}
		size := "-"
		if n, err := texture.TexelByteSize(format, texture.UByte); err == nil {
			size = strconv.Itoa(n)
		}
		rows = append(rows, []string{strconv.Itoa(channels), internal.String(), format.String(), size})
	}
	return rows
}

func texelHeader() []string {
	header := []string{"Format"}
	for _, t := range texture.AllPixelTypes {
		header = append(header, t.String())
	}
	return header
}

func texelRows() [][]string {
	var rows [][]string
	for _, f := range texture.AllPixelFormats {
		if f == texture.FormatUnknown {
			continue
		}
		row := []string{f.String()}
		for _, t := range texture.AllPixelTypes {
			cell := "-"
			if n, err := texture.TexelByteSize(f, t); err == nil {
				cell = strconv.Itoa(n)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return rows
}
