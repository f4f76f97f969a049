//go:build profile

package profiler

import (
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// events turns closed spans into balanced open/close events in microseconds.
// Spans are recorded as they close, so children precede their parents; they
// are ordered by start, outermost first.
func events(spans []span) ([]ssEvent, int64) {
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.depth, b.depth))
	})
	base := sorted[0].start

	out := make([]ssEvent, 0, 2*len(sorted))
	var open []span
	closeTo := func(at int64) {
		for len(open) > 0 && open[len(open)-1].end <= at {
			top := open[len(open)-1]
			open = open[:len(open)-1]
			out = append(out, ssEvent{Type: "C", At: (top.end - base) / 1000, Frame: int(top.scope)})
		}
	}
	var end int64
	for _, sp := range sorted {
		closeTo(sp.start)
		out = append(out, ssEvent{Type: "O", At: (sp.start - base) / 1000, Frame: int(sp.scope)})
		open = append(open, sp)
		end = max(end, sp.end)
	}
	for len(open) > 0 {
		closeTo(end)
	}
	return out, (end - base) / 1000
}

func writeSpeedscope(spans []span, path string) error {
	evs, end := events(spans)
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: make([]ssFrame, numScopes)},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "mix frame loop",
			Unit:     "microseconds",
			EndValue: end,
			Events:   evs,
		}},
		Exporter: "mix-profiler",
	}
	for s := range numScopes {
		doc.Shared.Frames[s] = ssFrame{Name: s.String()}
	}

	b, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("profiler: encode: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
