// Package storage records per-frame circle state and exports it as CSV or JSON.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bgcircles/internal/scene"
)

var ErrMalformedTrace = errors.New("storage: malformed trace")

var csvHeader = []string{"frame", "time_ms", "width", "height", "id", "x", "y", "size", "opacity", "speed_x", "speed_y", "scale"}

// Frame is one recorded state change.
type Frame struct {
	Index    int            `json:"index"`
	TimeMs   int64          `json:"time_ms"`
	Viewport scene.Viewport `json:"viewport"`
	Circles  []scene.Circle `json:"circles"`
}

type Metadata struct {
	Seed     int64     `json:"seed"`
	Count    int       `json:"count"`
	Pulse    string    `json:"pulse"`
	Ticks    int       `json:"ticks"`
	Recorded time.Time `json:"recorded"`
}

// Recorder collects frames. Observe has the signature of a render callback
// so it can be passed straight to scene.NewComponent; OnFrame lets it
// observe a headless run.
type Recorder struct {
	clock  func() time.Time
	frames []Frame
}

// NewRecorder stamps frames passed to Observe with clock, or time.Now when
// clock is nil.
func NewRecorder(clock func() time.Time) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{clock: clock}
}

func (r *Recorder) Observe(s scene.Snapshot) {
	r.OnFrame(s, r.clock())
}

func (r *Recorder) OnFrame(s scene.Snapshot, now time.Time) {
	r.frames = append(r.frames, Frame{
		Index:    len(r.frames),
		TimeMs:   now.UnixMilli(),
		Viewport: s.Viewport,
		Circles:  s.Circles,
	})
}

func (r *Recorder) Frames() []Frame { return r.frames }

// Series extracts one value of circle id across every frame that contains it.
func Series(frames []Frame, id int, value func(scene.Circle) float64) []float64 {
	out := make([]float64, 0, len(frames))
	for _, f := range frames {
		for _, c := range f.Circles {
			if c.ID == id {
				out = append(out, value(c))
				break
			}
		}
	}
	return out
}

func WriteCSV(w io.Writer, frames []Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, f := range frames {
		for _, c := range f.Circles {
			row := []string{
				strconv.Itoa(f.Index),
				strconv.FormatInt(f.TimeMs, 10),
				formatFloat(f.Viewport.Width),
				formatFloat(f.Viewport.Height),
				strconv.Itoa(c.ID),
				formatFloat(c.X),
				formatFloat(c.Y),
				formatFloat(c.Size),
				formatFloat(c.Opacity),
				formatFloat(c.SpeedX),
				formatFloat(c.SpeedY),
				formatFloat(c.Scale),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV. Frames without circles are not
// represented in the CSV and are therefore not restored.
func ReadCSV(r io.Reader) ([]Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTrace, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedTrace)
	}

	byIndex := make(map[int]*Frame)
	for i, rec := range records[1:] {
		v := make([]float64, len(rec))
		for j, field := range rec {
			if v[j], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ErrMalformedTrace, i+2, csvHeader[j], err)
			}
		}

		idx := int(v[0])
		f, ok := byIndex[idx]
		if !ok {
			f = &Frame{
				Index:    idx,
				TimeMs:   int64(v[1]),
				Viewport: scene.Viewport{Width: v[2], Height: v[3]},
			}
			byIndex[idx] = f
		}
		f.Circles = append(f.Circles, scene.Circle{
			ID: int(v[4]), X: v[5], Y: v[6], Size: v[7], Opacity: v[8],
			SpeedX: v[9], SpeedY: v[10], Scale: v[11],
		})
	}

	frames := make([]Frame, 0, len(byIndex))
	for _, f := range byIndex {
		frames = append(frames, *f)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Index < frames[j].Index })
	return frames, nil
}

type exportData struct {
	Metadata Metadata `json:"metadata"`
	Frames   []Frame  `json:"frames"`
}

func WriteJSON(w io.Writer, meta Metadata, frames []Frame) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData{Metadata: meta, Frames: frames})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
