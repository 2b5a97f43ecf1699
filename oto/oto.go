// Package oto plays gainfx.AudioBuffers on the default audio device.
package oto

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/ebitengine/oto/v3"
	"github.com/gainfx/gainfx"
)

type (
	Context struct {
		ctx      *oto.Context
		channels int
	}

	// FillFunc is called with a buffer to be filled with the next frames.
	// Returning an error stops the playback.
	FillFunc func(buf gainfx.AudioBuffer) error

	source struct {
		fill     FillFunc
		buf      gainfx.AudioBuffer
		view     gainfx.AudioBuffer
		channels int
	}
)

const bytesPerSample = 4

func NewContext(sampleRate, channels int) (*Context, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{ctx: ctx, channels: channels}, nil
}

// Play starts pulling audio from fill. Close the returned closer to stop.
func (c *Context) Play(fill FillFunc) io.Closer {
	src := &source{fill: fill, channels: c.channels, view: make(gainfx.AudioBuffer, c.channels)}
	p := c.ctx.NewPlayer(src)
	p.Play()
	return p
}

func (s *source) Read(p []byte) (int, error) {
	frames := len(p) / (bytesPerSample * s.channels)
	if frames == 0 {
		return 0, nil
	}
	if s.buf.Frames() < frames {
		s.buf = gainfx.MakeAudioBuffer(s.channels, frames)
	}
	for c := range s.view {
		s.view[c] = s.buf[c][:frames]
	}
	if err := s.fill(s.view); err != nil {
		log.Printf("audio playback stopped: %v", err)
		return 0, io.EOF
	}
	return len(Interleave(p[:0], s.view)), nil
}

// Interleave appends the frames of buf to dst as interleaved float32
// little-endian samples and returns the extended slice.
func Interleave(dst []byte, buf gainfx.AudioBuffer) []byte {
	for i := 0; i < buf.Frames(); i++ {
		for c := range buf {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(buf[c][i]))
		}
	}
	return dst
}
