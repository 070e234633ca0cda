package pipeline

import (
	"recap/internal/diarize"
	"recap/internal/logger"
	"recap/internal/media"
	"recap/internal/transcribe"
)

type implProcessor struct {
	converter media.Converter
	diarizer  diarize.Diarizer
	stt       transcribe.Transcriber
	text      TextService
	logger    logger.Logger
}

// New creates a new Processor instance.
func New(conv media.Converter, diar diarize.Diarizer, stt transcribe.Transcriber, text TextService, log logger.Logger) Processor {
	return &implProcessor{
		converter: conv,
		diarizer:  diar,
		stt:       stt,
		text:      text,
		logger:    log,
	}
}
