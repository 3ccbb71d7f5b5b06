package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/EstebanZG999/RaytracingGraficas/pkg/core"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/geometry"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/material"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/scene"
)

// upperSphereScene holds a single diffuse sphere above the look axis, lit
// only by an ambient light.
func upperSphereScene() *scene.Scene {
	scn := scene.New(scene.CameraPose{
		Eye:    mgl32.Vec3{0, 0, 5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	})
	mat := material.Flat(core.NewColor(200, 0, 0), 10.0, [4]float32{1.0, 0, 0, 0}, 1.0)
	scn.Add(geometry.NewSphere(mgl32.Vec3{0, 2, 0}, 1.0, mat))
	scn.AddLight(core.NewLight(mgl32.Vec3{0, 0, 0}, core.NewColor(255, 255, 255), 0.2))
	return scn
}

func newTestRenderer(scn *scene.Scene, workers int) *Renderer {
	camera := NewCamera(scn.Pose.Eye, scn.Pose.Center, scn.Pose.Up)
	return New(scn, camera, core.DefaultRenderConfig(), Options{NumWorkers: workers, BandRows: 4})
}

func TestRenderer_Render_EmptySceneIsBackground(t *testing.T) {
	scn := scene.New(scene.CameraPose{
		Eye:    mgl32.Vec3{0, 0, 5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	})
	r := newTestRenderer(scn, 2)

	fb := NewFramebuffer(8, 8)
	r.Render(fb)

	expected := core.DefaultRenderConfig().Background.Pack()
	for i, p := range fb.Pix {
		if p != expected {
			t.Fatalf("Expected background at pixel %d, got 0x%08x", i, p)
		}
	}
}

func TestRenderer_Render_RowZeroIsTop(t *testing.T) {
	r := newTestRenderer(upperSphereScene(), 2)
	fb := NewFramebuffer(16, 16)
	r.Render(fb)

	background := core.DefaultRenderConfig().Background.Pack()
	// The sphere sits above the look axis, so it shows up in the upper
	// rows of the raster and not in the lower ones.
	if got := fb.At(8, 4); got == background {
		t.Errorf("Expected sphere in the upper half, got background at (8,4)")
	}
	if got := fb.At(8, 12); got != background {
		t.Errorf("Expected background in the lower half, got 0x%08x at (8,12)", got)
	}
}

func TestRenderer_Render_WorkerCountInvariant(t *testing.T) {
	fbSerial := NewFramebuffer(16, 16)
	newTestRenderer(upperSphereScene(), 1).Render(fbSerial)

	fbParallel := NewFramebuffer(16, 16)
	newTestRenderer(upperSphereScene(), 4).Render(fbParallel)

	for i := range fbSerial.Pix {
		if fbSerial.Pix[i] != fbParallel.Pix[i] {
			t.Fatalf("Expected identical output at pixel %d, got 0x%08x vs 0x%08x",
				i, fbSerial.Pix[i], fbParallel.Pix[i])
		}
	}
}

func TestRenderer_Render_Stats(t *testing.T) {
	r := newTestRenderer(upperSphereScene(), 2)
	fb := NewFramebuffer(10, 14)
	stats := r.Render(fb)

	if stats.Width != 10 || stats.Height != 14 {
		t.Errorf("Expected frame 10x14, got %dx%d", stats.Width, stats.Height)
	}
	if stats.TotalPixels() != 10*14 {
		t.Errorf("Expected %d primary rays, got %d", 10*14, stats.TotalPixels())
	}

	// BandRows=4 over 14 rows: three full bands and a partial one
	if len(stats.Bands) != 4 {
		t.Fatalf("Expected 4 bands, got %d", len(stats.Bands))
	}
	rows := 0
	for i, band := range stats.Bands {
		if band.Band != i {
			t.Errorf("Expected bands ordered by index, got %d at position %d", band.Band, i)
		}
		rows += band.Rows
	}
	if rows != 14 {
		t.Errorf("Expected band rows to cover the frame, got %d", rows)
	}
	if stats.Bands[3].Rows != 2 {
		t.Errorf("Expected trailing partial band of 2 rows, got %d", stats.Bands[3].Rows)
	}
}

func TestRenderer_RenderPreview_FillsFrame(t *testing.T) {
	scn := scene.New(scene.CameraPose{
		Eye:    mgl32.Vec3{0, 0, 5},
		Center: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
	})
	camera := NewCamera(scn.Pose.Eye, scn.Pose.Center, scn.Pose.Up)
	r := New(scn, camera, core.DefaultRenderConfig(), Options{NumWorkers: 2, PreviewScale: 2})

	fb := NewFramebuffer(8, 8)
	stats := r.RenderPreview(fb)

	// The preview traces at quarter resolution
	if stats.TotalPixels() != 4*4 {
		t.Errorf("Expected 16 primary rays, got %d", stats.TotalPixels())
	}

	expected := core.DefaultRenderConfig().Background.Pack()
	for i, p := range fb.Pix {
		if p != expected {
			t.Fatalf("Expected upscaled background at pixel %d, got 0x%08x", i, p)
		}
	}
}

func TestOptions_WithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.NumWorkers <= 0 {
		t.Errorf("Expected positive default worker count, got %d", opts.NumWorkers)
	}
	if opts.BandRows != 8 {
		t.Errorf("Expected default band rows 8, got %d", opts.BandRows)
	}
	if opts.PreviewScale != 2 {
		t.Errorf("Expected default preview scale 2, got %d", opts.PreviewScale)
	}

	opts = Options{NumWorkers: 3, BandRows: 16, PreviewScale: 4}.withDefaults()
	if opts.NumWorkers != 3 || opts.BandRows != 16 || opts.PreviewScale != 4 {
		t.Errorf("Expected explicit options preserved, got %+v", opts)
	}
}
