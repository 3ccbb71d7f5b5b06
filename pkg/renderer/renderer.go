package renderer

import (
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/integrator"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/scene"
)

// Options configures the render loop
type Options struct {
	NumWorkers   int // Worker goroutines; 0 means GOMAXPROCS
	BandRows     int // Raster rows per band task
	PreviewScale int // Resolution divisor for the interactive fast path
}

// withDefaults fills in zero-valued options
func (o Options) withDefaults() Options {
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.BandRows <= 0 {
		o.BandRows = 8
	}
	if o.PreviewScale <= 0 {
		o.PreviewScale = 2
	}
	return o
}

// bandTask is one horizontal slice of the raster. Bands are disjoint, so
// workers write to the shared framebuffer without synchronization.
type bandTask struct {
	index int
	yMin  int
	yMax  int
}

// Renderer maps the raster to camera rays and shades each pixel through
// the integrator. The scene and camera are read-only for the duration of
// a Render call.
type Renderer struct {
	scene   *scene.Scene
	camera  *Camera
	whitted *integrator.Whitted
	opts    Options
}

// New creates a renderer for a scene and camera
func New(scn *scene.Scene, camera *Camera, config core.RenderConfig, opts Options) *Renderer {
	return &Renderer{
		scene:   scn,
		camera:  camera,
		whitted: integrator.NewWhitted(config),
		opts:    opts.withDefaults(),
	}
}

// Camera returns the camera the renderer casts rays from
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Render traces the full frame into the framebuffer and returns per-band
// statistics.
func (r *Renderer) Render(fb *Framebuffer) FrameStats {
	start := time.Now()
	objects := r.scene.Primitives()
	lights := r.scene.Lights()

	numBands := (fb.Height + r.opts.BandRows - 1) / r.opts.BandRows
	tasks := make(chan bandTask, numBands)
	results := make(chan BandStats, numBands)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				results <- r.renderBand(fb, task, objects, lights)
			}
		}()
	}

	for i := 0; i < numBands; i++ {
		yMin := i * r.opts.BandRows
		yMax := min(yMin+r.opts.BandRows, fb.Height)
		tasks <- bandTask{index: i, yMin: yMin, yMax: yMax}
	}
	close(tasks)
	wg.Wait()
	close(results)

	stats := FrameStats{
		Width:   fb.Width,
		Height:  fb.Height,
		Workers: r.opts.NumWorkers,
	}
	for band := range results {
		stats.Bands = append(stats.Bands, band)
	}
	sort.Slice(stats.Bands, func(i, j int) bool { return stats.Bands[i].Band < stats.Bands[j].Band })
	stats.Elapsed = time.Since(start)
	return stats
}

// RenderPreview renders at reduced resolution and nearest-neighbor
// upscales into the full framebuffer, trading quality for latency while
// the camera is moving.
func (r *Renderer) RenderPreview(fb *Framebuffer) FrameStats {
	low := NewFramebuffer(
		max(1, fb.Width/r.opts.PreviewScale),
		max(1, fb.Height/r.opts.PreviewScale),
	)
	stats := r.Render(low)
	fb.UpscaleFrom(low)
	return stats
}

// renderBand shades every pixel in one band. Pixel coordinates map to
// normalized device coordinates with x aspect-corrected and y inverted so
// raster row 0 is the top of the image.
func (r *Renderer) renderBand(fb *Framebuffer, task bandTask, objects []geometry.Primitive, lights []core.Light) BandStats {
	bandStart := time.Now()
	aspect := float32(fb.Width) / float32(fb.Height)

	for y := task.yMin; y < task.yMax; y++ {
		screenY := -(2.0*float32(y)/float32(fb.Height) - 1.0)
		for x := 0; x < fb.Width; x++ {
			screenX := (2.0*float32(x)/float32(fb.Width) - 1.0) * aspect

			direction := mgl32.Vec3{screenX, screenY, -1.0}.Normalize()
			worldDir := r.camera.BasisChange(direction)

			color := r.whitted.RayColor(core.NewRay(r.camera.Eye, worldDir), objects, lights, 0)
			fb.Set(x, y, color)
		}
	}

	rows := task.yMax - task.yMin
	return BandStats{
		Band:     task.index,
		Rows:     rows,
		Pixels:   rows * fb.Width,
		Duration: time.Since(bandStart),
	}
}
