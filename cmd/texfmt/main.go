package main

import (
	"os"
	"runtime"

	"github.com/urfave/cli"

	"github.com/richinsley/texfmt/options"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	opts := options.Default()

	app := cli.NewApp()
	app.Name = "texfmt"
	app.Usage = "inspect OpenGL texture formats and preview textures"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "list",
			Usage: "print the texture enumerations and derived sizes",
			Description: `
Print every texture enumeration with its OpenGL constant and derived data.
Pass one or more table names to restrict the output. Available tables:
` + tableNamesUsage(),
			ArgsUsage: "[table ...]",
			Action:    listTables,
		},
		{
			Name:      "info",
			Usage:     "describe the texture that would be created from image, video or volume files",
			ArgsUsage: "file1 file2 ...",
			Flags:     sourceFlags(opts),
			Action: func(ctx *cli.Context) error {
				return describeFiles(ctx, opts)
			},
		},
		{
			Name:  "preview",
			Usage: "open a window showing a texture",
			Description: `
Upload a texture and draw it over the whole window.

Keys: F cycles the min filter, G the mag filter, W the wrap mode,
V flips the image, Up/Down move through the slices of a volume,
Escape closes the window.`,
			ArgsUsage: "file",
			Flags: append(sourceFlags(opts),
				cli.IntFlag{
					Name:        "width",
					Value:       opts.Width,
					Usage:       "window width",
					Destination: &opts.Width,
				},
				cli.IntFlag{
					Name:        "height",
					Value:       opts.Height,
					Usage:       "window height",
					Destination: &opts.Height,
				},
			),
			Action: func(ctx *cli.Context) error {
				return previewFile(ctx, opts)
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// sourceFlags are the flags controlling how files are turned into textures.
func sourceFlags(opts *options.PreviewOptions) []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:        "filter",
			Value:       opts.Filter,
			Usage:       "sampler filter: mipmap, linear or nearest",
			Destination: &opts.Filter,
		},
		cli.StringFlag{
			Name:        "wrap",
			Value:       opts.Wrap,
			Usage:       "sampler wrap mode: repeat or clamp",
			Destination: &opts.Wrap,
		},
		cli.StringFlag{
			Name:        "sampler",
			Usage:       "JSON file with a sampler description; overrides --filter and --wrap",
			Destination: &opts.SamplerFile,
		},
		cli.BoolFlag{
			Name:        "srgb",
			Usage:       "store 8-bit color data in an sRGB format",
			Destination: &opts.SRGB,
		},
		cli.BoolFlag{
			Name:        "vflip",
			Usage:       "flip images vertically",
			Destination: &opts.VFlip,
		},
		cli.IntFlag{
			Name:        "channels",
			Usage:       "force the number of channels decoded by ffmpeg (1-4)",
			Destination: &opts.Channels,
		},
		cli.StringFlag{
			Name:        "ffmpeg",
			Usage:       "path to the ffmpeg executable",
			Destination: &opts.FFmpegPath,
		},
		cli.StringFlag{
			Name:        "ffprobe",
			Usage:       "path to the ffprobe executable; defaults to the one next to --ffmpeg",
			Destination: &opts.FFprobePath,
		},
	}
}
