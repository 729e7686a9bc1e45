// Package replay records the input of a session and plays it back.
//
// A session is fully determined by its config, its seed and the input frame
// of every step, so a recording stores only those. Frames are encoded with
// msgpack; the config travels as YAML.
package replay

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/kokaton-arcade/internal/core"
)

// Frame is the input of one step.
type Frame struct {
	Held   []core.Action `msgpack:"h,omitempty"`
	Events []core.Action `msgpack:"e,omitempty"`
}

// FrameOf captures an input frame.
func FrameOf(in core.InputFrame) Frame {
	f := Frame{Held: in.HeldActions()}
	if events := in.Events(); len(events) > 0 {
		f.Events = append([]core.Action(nil), events...)
	}
	return f
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range f.Held {
		in.Hold(a)
	}
	for _, a := range f.Events {
		in.Set(a)
	}
	return in
}

// EncodeFrames serializes frames with msgpack.
func EncodeFrames(frames []Frame) ([]byte, error) {
	data, err := msgpack.Marshal(frames)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode frames: %w", err)
	}
	return data, nil
}

// DecodeFrames parses frames written by EncodeFrames.
func DecodeFrames(data []byte) ([]Frame, error) {
	var frames []Frame
	if err := msgpack.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("replay: cannot decode frames: %w", err)
	}
	return frames, nil
}
