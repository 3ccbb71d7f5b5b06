// Package web serves the interactive viewer: rendered frames stream to the
// browser over a websocket and camera input deltas flow back.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"image/png"
	"io/fs"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/EstebanZG999/RaytracingGraficas/log"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/capture"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/renderer"
	"github.com/EstebanZG999/RaytracingGraficas/pkg/scene"
)

//go:embed static
var static embed.FS

var logger = log.New("web")

// framePeriod paces the interactive loop; one render decision per tick
const framePeriod = 33 * time.Millisecond

// InputMessage is a camera control delta sent by the browser. Type selects
// which fields are meaningful.
type InputMessage struct {
	Type      string  `json:"type"` // "orbit", "move" or "vertical"
	Yaw       float32 `json:"yaw"`
	Pitch     float32 `json:"pitch"`
	Forward   float32 `json:"forward"`
	Rightward float32 `json:"rightward"`
	Delta     float32 `json:"delta"`
}

// Apply mutates the camera according to the message and reports whether
// the camera actually moved.
func (m InputMessage) Apply(camera *renderer.Camera) bool {
	switch m.Type {
	case "orbit":
		if m.Yaw == 0 && m.Pitch == 0 {
			return false
		}
		camera.Orbit(m.Yaw, m.Pitch)
	case "move":
		if m.Forward == 0 && m.Rightward == 0 {
			return false
		}
		camera.Move(m.Forward, m.Rightward)
	case "vertical":
		if m.Delta == 0 {
			return false
		}
		camera.MoveVertical(m.Delta)
	default:
		return false
	}
	return true
}

// Server drives one interactive render session per websocket connection.
// Sessions share the camera, scene and recorder, so each tick runs under
// mu: camera and scene mutation must complete before any render pass
// reads them, and recorder writes must not interleave.
type Server struct {
	addr     string
	renderer *renderer.Renderer
	scene    *scene.Scene
	width    int
	height   int
	recorder *capture.Recorder
	upgrader websocket.Upgrader

	mu sync.Mutex
}

// NewServer creates a viewer server. recorder may be nil; when set, every
// full-resolution frame is appended to the capture stream.
func NewServer(addr string, r *renderer.Renderer, scn *scene.Scene, width, height int, recorder *capture.Recorder) *Server {
	return &Server{
		addr:     addr,
		renderer: r,
		scene:    scn,
		width:    width,
		height:   height,
		recorder: recorder,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ListenAndServe blocks serving the viewer page and websocket endpoint
func (s *Server) ListenAndServe() error {
	pages, err := fs.Sub(static, "static")
	if err != nil {
		return fmt.Errorf("embedded viewer assets: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.FS(pages)))
	mux.HandleFunc("/ws", s.handleSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	logger.Infof("viewer listening on http://%s", s.addr)
	return http.ListenAndServe(s.addr, mux)
}

// handleSocket runs the interactive loop for one connection
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	logger.Infof("viewer connected: %s", conn.RemoteAddr())

	inputs := make(chan InputMessage, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg InputMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inputs <- msg:
			default: // drop input bursts rather than stall the reader
			}
		}
	}()

	s.runSession(conn, inputs, done)
	logger.Infof("viewer disconnected: %s", conn.RemoteAddr())
}

// runSession mirrors the offline interactive loop: each tick applies any
// pending input, advances the water animation, then performs exactly one
// of a low-res preview render, a full-res render, or nothing. Ticks from
// concurrent sessions serialize on the server mutex.
func (s *Server) runSession(conn *websocket.Conn, inputs <-chan InputMessage, done <-chan struct{}) {
	fb := renderer.NewFramebuffer(s.width, s.height)
	camera := s.renderer.Camera()
	start := time.Now()

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	// Deliver a first full frame before any input arrives
	shouldRender := true

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		cameraMoved := false
	drain:
		for {
			select {
			case msg := <-inputs:
				if msg.Apply(camera) {
					cameraMoved = true
				}
			default:
				break drain
			}
		}

		sceneChanged := s.scene.Animate(float32(time.Since(start).Seconds()))

		frameReady := false
		switch {
		case cameraMoved || sceneChanged:
			s.renderer.RenderPreview(fb)
			frameReady = true
			shouldRender = true
		case shouldRender:
			s.renderer.Render(fb)
			if s.recorder != nil {
				if err := s.recorder.WriteFrame(fb.Width, fb.Height, fb.Pix); err != nil {
					logger.Warningf("frame capture: %v", err)
				}
			}
			frameReady = true
			shouldRender = false
		}
		s.mu.Unlock()

		// The framebuffer is session-local; encoding needs no lock
		if frameReady {
			if err := s.sendFrame(conn, fb); err != nil {
				return
			}
		}
	}
}

// sendFrame pushes one PNG-encoded frame as a binary message
func (s *Server) sendFrame(conn *websocket.Conn, fb *renderer.Framebuffer) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToRGBA()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return conn.WriteMessage(websocket.BinaryMessage, buf.Bytes())
}
