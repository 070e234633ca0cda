package media

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func writeWAVHeader(t *testing.T, path string, channels uint16, sampleRate uint32) {
	t.Helper()

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)

	if err := os.WriteFile(path, header, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsWAVMono16k(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		channels   uint16
		sampleRate uint32
		want       bool
	}{
		{"mono 16k", 1, 16000, true},
		{"stereo 16k", 2, 16000, false},
		{"mono 44.1k", 1, 44100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".wav")
			writeWAVHeader(t, path, tt.channels, tt.sampleRate)

			got, err := IsWAVMono16k(path)
			if err != nil {
				t.Fatalf("IsWAVMono16k() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsWAVMono16k() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWAVMono16kNotWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all, just text"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := IsWAVMono16k(path); err == nil {
		t.Error("expected error for non-wav content")
	}
}

func TestIsWAVMono16kTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	if err := os.WriteFile(path, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := IsWAVMono16k(path); err == nil {
		t.Error("expected error for truncated header")
	}
}
