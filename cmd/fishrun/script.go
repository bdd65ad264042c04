package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fishrun/internal/core"
)

// Segment holds a set of keys down for a number of frames.
type Segment struct {
	Keys   []string `yaml:"keys"`
	Frames int      `yaml:"frames"`
}

// Script is a scripted input sequence for headless runs:
//
//	segments:
//	  - keys: [right]
//	    frames: 120
//	  - keys: [right, up]
//	    frames: 10
type Script struct {
	Segments []Segment `yaml:"segments"`
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("script: %w", err)
	}
	if len(s.Segments) == 0 {
		return Script{}, fmt.Errorf("script: no segments")
	}
	for i, seg := range s.Segments {
		if seg.Frames <= 0 {
			return Script{}, fmt.Errorf("script: segment %d: frames must be positive", i)
		}
		for _, name := range seg.Keys {
			if _, ok := core.ParseKey(name); !ok {
				return Script{}, fmt.Errorf("script: segment %d: unknown key %q", i, name)
			}
		}
	}
	return s, nil
}

// HoldRight is the script used when none is given.
func HoldRight(frames int) Script {
	return Script{Segments: []Segment{{Keys: []string{"right"}, Frames: frames}}}
}

// Expand turns the script into per-frame input. A key held in one segment
// and not the next is reported released on the next segment's first frame.
func (s Script) Expand(dt float64) []core.InputFrame {
	var frames []core.InputFrame
	var prev []core.Key

	for _, seg := range s.Segments {
		keys := make([]core.Key, 0, len(seg.Keys))
		for _, name := range seg.Keys {
			if k, ok := core.ParseKey(name); ok {
				keys = append(keys, k)
			}
		}

		for i := 0; i < seg.Frames; i++ {
			f := core.NewInputFrame()
			f.Dt = dt
			if i == 0 {
				for _, k := range prev {
					f.Release(k)
				}
			}
			for _, k := range keys {
				f.Press(k)
			}
			frames = append(frames, f)
		}
		prev = keys
	}
	return frames
}
