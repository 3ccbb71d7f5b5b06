package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/EstebanZG999/RaytracingGraficas/log"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/capture"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/loaders"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/renderer"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/scene"
	"github.com/EstebanZG999/RaytracingGraficas/web"
)

var logger = log.New("raytracer")

func main() {
	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "whitted-style raytracer for voxel scenes"
	app.Version = "1.0.0"
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

	sceneFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "scene",
			Value: "island",
			Usage: "scene to build: 'island' or 'default'",
		},
		cli.StringFlag{
			Name:  "textures",
			Value: "textures",
			Usage: "directory with island textures; missing files fall back to flat colors",
		},
		cli.IntFlag{
			Name:  "width",
			Value: 600,
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 600,
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "render workers (0 = all CPUs)",
		},
		cli.IntFlag{
			Name:  "depth",
			Value: 3,
			Usage: "maximum reflection/refraction recursion depth",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a PNG file",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "output PNG path",
				},
			}, sceneFlags...),
			Action: renderFrame,
		},
		{
			Name:  "serve",
			Usage: "start the interactive browser viewer",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Value: "localhost:8080",
					Usage: "listen address",
				},
				cli.StringFlag{
					Name:  "record",
					Usage: "append rendered frames to a capture file",
				},
			}, sceneFlags...),
			Action: serveViewer,
		},
		{
			Name:      "export",
			Usage:     "export a capture file to numbered PNG frames",
			ArgsUsage: "capture_file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Value: "frames",
					Usage: "output directory",
				},
			},
			Action: exportCapture,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// buildScene constructs the requested scene and a renderer for it
func buildScene(ctx *cli.Context) (*scene.Scene, *renderer.Renderer, error) {
	var scn *scene.Scene
	switch name := ctx.String("scene"); name {
	case "island":
		scn = scene.NewIslandScene(loaders.LoadIslandTextures(ctx.String("textures")))
	case "default":
		scn = scene.NewDefaultScene()
	default:
		return nil, nil, fmt.Errorf("unknown scene %q", name)
	}

	config := core.DefaultRenderConfig()
	config.MaxDepth = ctx.Int("depth")

	camera := renderer.NewCamera(scn.Pose.Eye, scn.Pose.Center, scn.Pose.Up)
	r := renderer.New(scn, camera, config, renderer.Options{
		NumWorkers: ctx.Int("workers"),
	})
	return scn, r, nil
}

// renderFrame renders one still frame and writes it as a PNG
func renderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	_, r, err := buildScene(ctx)
	if err != nil {
		return err
	}

	fb := renderer.NewFramebuffer(ctx.Int("width"), ctx.Int("height"))
	logger.Infof("rendering %dx%d", fb.Width, fb.Height)
	stats := r.Render(fb)

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, fb.ToRGBA()); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	logger.Infof("wrote %s", out)
	displayFrameStats(os.Stdout, stats)
	return nil
}

// serveViewer runs the interactive websocket viewer
func serveViewer(ctx *cli.Context) error {
	setupLogging(ctx)

	scn, r, err := buildScene(ctx)
	if err != nil {
		return err
	}

	var recorder *capture.Recorder
	if path := ctx.String("record"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create capture file: %w", err)
		}
		defer file.Close()
		recorder = capture.NewRecorder(file)
		logger.Infof("recording frames to %s", path)
	}

	server := web.NewServer(ctx.String("addr"), r, scn, ctx.Int("width"), ctx.Int("height"), recorder)
	return server.ListenAndServe()
}

// exportCapture replays a capture stream into numbered PNG files
func exportCapture(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return fmt.Errorf("missing capture file argument")
	}
	file, err := os.Open(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("open capture file: %w", err)
	}
	defer file.Close()

	outDir := ctx.String("out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	reader := capture.NewReader(file)
	for index := 0; ; index++ {
		width, height, pix, err := reader.ReadFrame()
		if err == io.EOF {
			logger.Infof("exported %d frames to %s", index, outDir)
			return nil
		}
		if err != nil {
			return err
		}

		fb := &renderer.Framebuffer{Width: width, Height: height, Pix: pix}
		path := filepath.Join(outDir, fmt.Sprintf("frame_%04d.png", index))
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := png.Encode(out, fb.ToRGBA()); err != nil {
			out.Close()
			return fmt.Errorf("encode %s: %w", path, err)
		}
		out.Close()
	}
}

// displayFrameStats prints a render summary table
func displayFrameStats(w io.Writer, stats renderer.FrameStats) {
	slowest := stats.SlowestBand()

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Bands", "Workers", "Primary rays", "Slowest band", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		strconv.Itoa(len(stats.Bands)),
		strconv.Itoa(stats.Workers),
		strconv.Itoa(stats.TotalPixels()),
		fmt.Sprintf("#%d (%s)", slowest.Band, slowest.Duration),
		stats.Elapsed.String(),
	})
	table.Render()
}
