package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/reveal/constants"
)

// ErrUnsupportedFormat is returned for track files that are neither mp3 nor wav
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// track is an opened, endlessly looping ambient stream
type track struct {
	streamer beep.Streamer
	format   beep.Format
	close    func() error
}

// openTrack decodes path, or returns the built-in pad when path is empty
func openTrack(path string) (*track, error) {
	if path == "" {
		sr := beep.SampleRate(constants.AmbientSampleRate)
		return &track{
			streamer: NewPadGenerator(sr),
			format:   beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2},
			close:    func() error { return nil },
		}, nil
	}

	var decode func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".wav":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	stream, format, err := decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode track %s: %w", path, err)
	}

	return &track{
		streamer: beep.Loop(-1, stream),
		format:   format,
		close: func() error {
			// the decoder may already have closed f
			stream.Close()
			if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				return err
			}
			return nil
		},
	}, nil
}
