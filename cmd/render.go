package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/ndoll1998/FairPT/renderer"
	"github.com/ndoll1998/FairPT/scene/compiler"
)

// RenderFrame renders the built-in cornell scene to an image file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		NumBounces:      uint32(ctx.Int("bounces")),
		Seed:            ctx.Int64("seed"),
		NumWorkers:      ctx.Int("workers"),
	}

	objects, materials, cam, err := buildCornellScene(ctx.String("obj"), ctx.String("debug"))
	if err != nil {
		return err
	}

	sc, err := compiler.Compile(objects, materials, ctx.Int("bvh-depth"), ctx.Int("bvh-leaf-size"))
	if err != nil {
		return err
	}

	r, err := renderer.New(sc, cam, opts)
	if err != nil {
		return err
	}

	fb, err := r.Render()
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err = fb.Save(out); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", out)

	stats, err := r.Stats()
	if err != nil {
		return err
	}
	displayFrameStats(stats)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block row", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%s", stat.RenderTime),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%s", stats.RenderTime)})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
