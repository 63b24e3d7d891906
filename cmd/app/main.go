package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	cfg "github.com/daycycle/go-daywall/pkg/config"
	"github.com/daycycle/go-daywall/pkg/core"
	"github.com/daycycle/go-daywall/pkg/logger"
	"github.com/daycycle/go-daywall/pkg/solar"
)

var app = cli.NewApp()
var log = logger.Log

var locationFlags = []cli.Flag{
	cli.Float64Flag{
		Name:  "lat",
		Usage: "latitude for sunrise/sunset resolution",
	},
	cli.Float64Flag{
		Name:  "lon",
		Usage: "longitude for sunrise/sunset resolution",
	},
	cli.StringFlag{
		Name:  "date",
		Usage: "date for sunrise/sunset resolution (YYYY-MM-DD, default today)",
	},
}

func init() {
	app.Name = "daywall"
	app.Usage = "A day-cycle dynamic wallpaper packager"
	app.UsageText = "daywall [command] filename"
	app.HideHelp = true
	app.HideVersion = true
	app.ArgsUsage = ""
	app.Commands = []cli.Command{
		{
			Name:    "build",
			Aliases: []string{"b"},
			Usage:   "Build a wallpaper from a manifest",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file",
					Value: cfg.DefaultOutput,
				},
			}, locationFlags...),
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				cr, err := newCore(c)
				if err != nil {
					return err
				}
				return cr.Build(filename, c.String("out"))
			},
		},
		{
			Name:    "inspect",
			Aliases: []string{"i"},
			Usage:   "Print the metadata of a wallpaper",
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				cr, err := newCore(c)
				if err != nil {
					return err
				}
				return cr.Inspect(filename)
			},
		},
		{
			Name:    "extract",
			Aliases: []string{"x"},
			Usage:   "Extract the frames of a wallpaper",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Usage: "output directory",
					Value: "frames",
				},
			},
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				cr, err := newCore(c)
				if err != nil {
					return err
				}
				return cr.Extract(filename, c.String("dir"))
			},
		},
		{
			Name:    "verify",
			Aliases: []string{"t"},
			Usage:   "Run build+read and compare the round trip",
			Flags:   locationFlags,
			Action: func(c *cli.Context) error {
				filename, err := getFilename(c)
				if err != nil {
					return err
				}
				cr, err := newCore(c)
				if err != nil {
					return err
				}
				return cr.Verify(filename)
			},
		},
	}
}

func getFilename(c *cli.Context) (string, error) {
	f := c.Args().Get(0)
	if f == "" {
		return "", fmt.Errorf("Filename is required")
	}
	return f, nil
}

func newCore(c *cli.Context) (*core.Core, error) {
	date := time.Now()
	if s := c.String("date"); s != "" {
		var err error
		date, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("Invalid date %q: %v", s, err)
		}
	}
	resolver := solar.Resolver{
		Latitude:  c.Float64("lat"),
		Longitude: c.Float64("lon"),
		Date:      date,
	}
	return core.New(context.Background(), resolver), nil
}

func main() {
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
