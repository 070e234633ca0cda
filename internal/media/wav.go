package media

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// IsWAVMono16k reads the RIFF header and reports whether the file is a
// single-channel 16 kHz WAV.
func IsWAVMono16k(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, 36)
	if _, err := io.ReadFull(f, header); err != nil {
		return false, fmt.Errorf("read wav header: %w", err)
	}

	if !bytes.Equal(header[0:4], []byte("RIFF")) ||
		!bytes.Equal(header[8:12], []byte("WAVE")) ||
		!bytes.Equal(header[12:16], []byte("fmt ")) {
		return false, fmt.Errorf("not a wav file")
	}

	channels := binary.LittleEndian.Uint16(header[22:24])
	sampleRate := binary.LittleEndian.Uint32(header[24:28])
	return channels == 1 && sampleRate == 16000, nil
}
