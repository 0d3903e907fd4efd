package audio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeWAVRejectsChannelLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeWAV(&buf, []float64{0, 0}, []float64{0}, 44100)
	if err == nil {
		t.Fatalf("expected an error for mismatched channel lengths")
	}
}

func TestEncodeWAVWritesNonEmptyOutput(t *testing.T) {
	var buf bytes.Buffer
	left := make([]float64, 100)
	right := make([]float64, 100)
	if err := EncodeWAV(&buf, left, right, 44100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty WAV output")
	}
}

func TestWriteWAVFileCreatesDestinationAndNoTempFileRemains(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")
	left := make([]float64, 10)
	right := make([]float64, 10)
	if err := WriteWAVFile(path, left, right, 44100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected destination file to exist: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file in dir (no leftover temp file), got %d", len(entries))
	}
}
