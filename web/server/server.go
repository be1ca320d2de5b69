package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/scene"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/viewer"
)

// Server exposes one interactive viewer session over HTTP
type Server struct {
	port    int
	console *consoleFanout

	mu      sync.Mutex
	session *viewer.Viewer
	request SessionRequest
}

// NewServer creates a new web server with the default session
func NewServer(port int) *Server {
	s := &Server{port: port, console: newConsoleFanout()}
	req := defaultSessionRequest()
	session, err := s.createSession(req)
	if err != nil {
		// The built-in default scene always validates
		panic(err)
	}
	s.session = session
	s.request = req
	return s
}

// SessionRequest holds the options a session is created from
type SessionRequest struct {
	Scene     string  `json:"scene"`     // Scene ID (e.g., "default")
	Width     int     `json:"width"`     // Raster width
	Height    int     `json:"height"`    // Raster height
	Mode      string  `json:"mode"`      // "phong" or "normal"
	CameraZ   float64 `json:"cameraZ"`   // Starting camera z
	Seed      int64   `json:"seed"`      // Generator seed
	Spheres   int     `json:"spheres"`   // Generated sphere count
	Animation string  `json:"animation"` // "orbit", "drift" or "none"
}

// SessionState is the JSON view of the current session
type SessionState struct {
	Scene     string  `json:"scene"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Mode      string  `json:"mode"`
	CameraZ   float64 `json:"cameraZ"`
	Ticks     int     `json:"ticks"`
	Animation string  `json:"animation"`
	Quit      bool    `json:"quit,omitempty"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	HitPixels      int     `json:"hitPixels"`
	ShadowedPixels int     `json:"shadowedPixels"`
	HitRatio       float64 `json:"hitRatio"`
	RenderMs       int64   `json:"renderMs"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		TotalPixels:    stats.TotalPixels,
		HitPixels:      stats.HitPixels,
		ShadowedPixels: stats.ShadowedPixels,
		HitRatio:       stats.HitRatio(),
		RenderMs:       stats.Elapsed.Milliseconds(),
	}
}

func defaultSessionRequest() SessionRequest {
	defaults := renderer.DefaultConfig()
	generator := scene.DefaultGeneratorConfig()
	return SessionRequest{
		Scene:     "default",
		Width:     defaults.Width,
		Height:    defaults.Height,
		Mode:      string(defaults.Mode),
		CameraZ:   scene.DefaultCameraZ,
		Seed:      generator.Seed,
		Spheres:   generator.SphereCount,
		Animation: "orbit",
	}
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/reset", s.handleReset)
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/control", s.handleControl)
	mux.HandleFunc("/api/frame", s.handleFrame)
	mux.HandleFunc("/api/animate", s.handleAnimate)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// current returns the active session
func (s *Server) current() (*viewer.Viewer, SessionRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.request
}

// createSession builds a viewer from req, logging to the console fan-out
func (s *Server) createSession(req SessionRequest) (*viewer.Viewer, error) {
	sceneObj, err := scene.Create(req.Scene, scene.GeneratorConfig{
		Seed:        req.Seed,
		SphereCount: req.Spheres,
		Extent:      scene.DefaultGeneratorConfig().Extent,
	})
	if err != nil {
		return nil, err
	}
	sceneObj.SetCameraZ(req.CameraZ)

	animator, err := scene.NewAnimator(req.Animation, sceneObj)
	if err != nil {
		return nil, err
	}

	config := renderer.MergeConfig(renderer.DefaultConfig(), renderer.Config{
		Width:  req.Width,
		Height: req.Height,
		Mode:   renderer.DisplayMode(req.Mode),
	})
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return viewer.New(sceneObj, config, animator, s.console), nil
}

func (s *Server) state(quit bool) SessionState {
	session, req := s.current()
	width, height := session.Size()
	return SessionState{
		Scene:     req.Scene,
		Width:     width,
		Height:    height,
		Mode:      string(session.Mode()),
		CameraZ:   session.CameraZ(),
		Ticks:     session.Ticks(),
		Animation: req.Animation,
		Quit:      quit,
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scene.ListScenes())
}

// handleReset replaces the session with one built from the query parameters
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseSessionRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	session, err := s.createSession(*req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.session = session
	s.request = *req
	s.mu.Unlock()

	s.console.Printf("Session reset: scene %s, %d spheres, %s mode\n", req.Scene, req.Spheres, req.Mode)
	writeJSON(w, http.StatusOK, s.state(false))
}

// handleState returns the current session state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state(false))
}

// handleControl applies one keyboard command, e.g. /api/control?key=%2B
func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if len([]rune(key)) != 1 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("key must be a single character, got: %q", key))
		return
	}

	session, _ := s.current()
	quit := session.HandleKey([]rune(key)[0])
	writeJSON(w, http.StatusOK, s.state(quit))
}

// handleFrame renders the current state as a PNG
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	overlay, err := parseBoolParam(r.URL.Query(), "overlay", false)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, _ := s.current()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := session.Snapshot(w, overlay); err != nil {
		log.Printf("Error rendering frame: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseSessionRequest parses reset parameters on top of the defaults
func (s *Server) parseSessionRequest(r *http.Request) (*SessionRequest, error) {
	req := defaultSessionRequest()
	values := r.URL.Query()

	if sceneID := values.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	}
	if mode := values.Get("mode"); mode != "" {
		if _, err := renderer.ParseDisplayMode(mode); err != nil {
			return nil, err
		}
		req.Mode = mode
	}
	if animation := values.Get("animation"); animation != "" {
		req.Animation = animation
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", req.Width, 16, 1200); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", req.Height, 16, 1200); err != nil {
		return nil, err
	}
	if req.Spheres, err = parseIntParam(values, "spheres", req.Spheres, 1, 100); err != nil {
		return nil, err
	}
	if req.CameraZ, err = parseFloatParam(values, "camera", req.CameraZ, viewer.MinCameraZ, viewer.MaxCameraZ); err != nil {
		return nil, err
	}
	if seed := values.Get("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", seed)
		}
	}

	return &req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses a boolean parameter from URL query
func parseBoolParam(values url.Values, key string, defaultValue bool) (bool, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
