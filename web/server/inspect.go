package server

import (
	"net/http"
	"strconv"

	"github.com/mfcaeroc/fcaerocaso-graphics-assignment6/pkg/viewer"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	X         int        `json:"x"`
	Y         int        `json:"y"`
	Color     [3]uint8   `json:"color"` // Displayed pixel color
	Sphere    int        `json:"sphere"`
	Shadowed  bool       `json:"shadowed"`
	Point     [3]float64 `json:"point"`
	Normal    [3]float64 `json:"normal"`
	Distance  float64    `json:"distance"`
	Center    [3]float64 `json:"center"`
	Radius    float64    `json:"radius"`
	BaseColor [3]uint8   `json:"baseColor"`
}

func newInspectResponse(info viewer.PixelInfo) InspectResponse {
	response := InspectResponse{
		Hit:    info.Result.Hit,
		X:      info.X,
		Y:      info.Y,
		Color:  [3]uint8{info.Color.R, info.Color.G, info.Color.B},
		Sphere: info.Result.Sphere,
	}
	if !info.Result.Hit {
		return response
	}

	hit := info.Hit
	response.Shadowed = info.Result.Shadowed
	response.Point = [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
	response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
	response.Distance = hit.T
	response.Center = [3]float64{info.Center.X, info.Center.Y, info.Center.Z}
	response.Radius = info.Radius
	response.BaseColor = [3]uint8{info.BaseColor.R, info.BaseColor.G, info.BaseColor.B}
	return response
}

// handleInspect traces one pixel of the current session. Row 0 is the
// bottom row of the picture.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}

	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	session, _ := s.current()
	info, err := session.Inspect(pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	writeJSON(w, http.StatusOK, newInspectResponse(info))
}
