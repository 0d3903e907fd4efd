package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// seekableBuffer is a growable byte slice implementing io.WriteSeeker so it can be passed
// to wav.Encode, which requires Seek to patch in header sizes after writing
// sample data. Seeking is only ever used by wav.Encode to rewrite bytes
// already written, so tracking a single write position suffices.
type seekableBuffer struct {
	buf []byte
	pos int
}

func (b *seekableBuffer) Write(p []byte) (int, error) {
	end := b.pos + len(p)
	if end > len(b.buf) {
		b.buf = append(b.buf, make([]byte, end-len(b.buf))...)
	}
	copy(b.buf[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = b.pos
	case io.SeekEnd:
		base = len(b.buf)
	default:
		return 0, fmt.Errorf("seekable buffer: invalid whence %d", whence)
	}
	newPos := base + int(offset)
	if newPos < 0 {
		return 0, fmt.Errorf("seekable buffer: negative position")
	}
	b.pos = newPos
	return int64(newPos), nil
}

// segmentStreamer adapts a rendered stereo segment to beep.Streamer so the
// pack's own WAV encoder (github.com/gopxl/beep/wav) can write it. Grounded
// on lixenwraith-vi-fighter/audio/sound_manager.go's beep.Streamer/
// beep.Format usage.
type segmentStreamer struct {
	left, right []float64
	pos         int
}

func (s *segmentStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.left) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.left) {
		samples[n][0] = s.left[s.pos]
		samples[n][1] = s.right[s.pos]
		s.pos++
		n++
	}
	return n, true
}

func (s *segmentStreamer) Err() error { return nil }

// EncodeWAV writes a 16-bit PCM stereo WAV at sampleRate to w.
func EncodeWAV(w io.Writer, left, right []float64, sampleRate int) error {
	if len(left) != len(right) {
		return fmt.Errorf("encode wav: channel length mismatch: %d vs %d", len(left), len(right))
	}
	streamer := &segmentStreamer{left: left, right: right}
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2, // 16-bit PCM, per spec.md §6's public WAV artifact.
	}
	sb := &seekableBuffer{}
	if err := wav.Encode(sb, streamer, format); err != nil {
		return err
	}
	_, err := w.Write(sb.buf)
	return err
}

// WriteWAVFile writes the segment to path, atomically: it renders to a
// temporary file in the same directory and renames over the destination
// only on success, so a failing generation never leaves a partial WAV
// (spec.md §7).
func WriteWAVFile(path string, left, right []float64, sampleRate int) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".seedforge-wav-*")
	if err != nil {
		return fmt.Errorf("write wav file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if err = EncodeWAV(tmp, left, right, sampleRate); err != nil {
		tmp.Close()
		return fmt.Errorf("write wav file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write wav file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write wav file: %w", err)
	}
	return nil
}
