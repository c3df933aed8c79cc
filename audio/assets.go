package audio

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

// resampleQuality trades CPU for fidelity when asset rate differs from output
const resampleQuality = 4

// lookupAsset resolves name inside dir, failing when the file does not exist
func lookupAsset(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not find file: %s", path)
	}
	if info.IsDir() {
		return "", errors.Errorf("could not find file: %s is a directory", path)
	}
	return path, nil
}

// loadBuffer decodes a WAV file fully into memory at the output rate
func loadBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, stream)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return buf, nil
}

// synthBuffer renders a short attenuated sine blip, used when an effect file is missing
func synthBuffer(rate beep.SampleRate, freq float64, d time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, errors.Wrapf(err, "sine %.0fHz", freq)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(&effects.Gain{Streamer: beep.Take(rate.N(d), sine), Gain: -0.75})
	return buf, nil
}
