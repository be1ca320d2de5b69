package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/renderer"
	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/viewer"
)

// FrameUpdate represents a single animation frame sent via SSE
type FrameUpdate struct {
	FrameNumber int     `json:"frameNumber"` // 1-based
	TotalFrames int     `json:"totalFrames"` // 0 streams until the client disconnects
	ImageData   string  `json:"imageData"`   // Base64 encoded PNG
	CameraZ     float64 `json:"cameraZ"`
	Mode        string  `json:"mode"`
	Stats       Stats   `json:"stats"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "frame", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleAnimate ticks the session and streams every rendered frame via SSE
// together with the session's console output
func (s *Server) handleAnimate(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	totalFrames, err := parseIntParam(r.URL.Query(), "frames", 100, 0, 100000)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	overlay, err := parseBoolParam(r.URL.Query(), "overlay", false)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Setup console logging and streaming
	consoleChan := make(chan ConsoleMessage, 50)
	unsubscribe := s.console.Subscribe(NewWebLogger(fmt.Sprintf("stream-%d", time.Now().UnixNano()), consoleChan))
	consoleDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(consoleDone)
	}()
	stopConsole := func() {
		unsubscribe()
		close(consoleChan)
		<-consoleDone
	}

	session, _ := s.current()
	startTime := time.Now()
	frameNumber := 0

	err = session.Run(ctx, totalFrames, func(frame *renderer.Frame) error {
		frameNumber++
		update, err := s.frameUpdate(session, frame, overlay)
		if err != nil {
			return err
		}
		update.FrameNumber = frameNumber
		update.TotalFrames = totalFrames
		update.ElapsedMs = time.Since(startTime).Milliseconds()

		data, err := json.Marshal(update)
		if err != nil {
			return err
		}
		select {
		case sseEventChan <- SSEEvent{Type: "frame", Data: string(data)}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	stopConsole()

	if ctx.Err() != nil {
		// Client disconnected
		return
	}
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: fmt.Sprintf("Streamed %d frames", frameNumber)}:
	case <-ctx.Done():
	}
}

// frameUpdate encodes a frame with the session state it was rendered from
func (s *Server) frameUpdate(session *viewer.Viewer, frame *renderer.Frame, overlay bool) (FrameUpdate, error) {
	var img image.Image = frame.ToRGBA()
	if overlay {
		img = viewer.Annotate(frame, session.Caption())
	}

	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		return FrameUpdate{}, fmt.Errorf("failed to encode image: %w", err)
	}

	return FrameUpdate{
		ImageData: imageData,
		CameraZ:   session.CameraZ(),
		Mode:      string(session.Mode()),
		Stats:     newStats(session.LastStats()),
	}, nil
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}

			// Check if client is still connected before writing
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := s.sendSSEEvent(w, event.Type, event.Data); err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// sendSSEEvent writes one SSE event and flushes it
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case consoleMsg, ok := <-consoleChan:
			if !ok {
				return
			}

			data, err := json.Marshal(consoleMsg)
			if err != nil {
				log.Printf("Error marshaling console message: %v", err)
				continue
			}

			select {
			case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
			case <-ctx.Done():
				return
			default:
				// Channel full, skip message to avoid blocking
			}

		case <-ctx.Done():
			return
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
	}
}
