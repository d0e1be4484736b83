package main

import (
	"os"

	"github.com/ndoll1998/FairPT/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "fairpt"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.0.1"
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
			Name:  "render",
			Usage: "render the built-in cornell scene",
			Description: `
Render the built-in cornell box scene, optionally extending it with a mesh
loaded from a wavefront obj file, and write the frame to a png or bmp file
depending on the output file extension.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 32,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 10,
					Usage: "maximum path depth",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for the deterministic rng streams",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of concurrently rendered blocks (defaults to the number of cpus)",
				},
				cli.IntFlag{
					Name:  "bvh-depth",
					Usage: "maximum bvh tree depth",
				},
				cli.IntFlag{
					Name:  "bvh-leaf-size",
					Usage: "smallest bvh work list worth subdividing further",
				},
				cli.StringFlag{
					Name:  "obj",
					Usage: "wavefront obj file to place inside the cornell box",
				},
				cli.StringFlag{
					Name:  "debug",
					Usage: "render a debug visualisation instead of shading (normal, depth or cosine)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
