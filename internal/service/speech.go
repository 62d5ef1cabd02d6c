package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SamPrinceFranklin/TensorTraffic-sub001/internal/config"
)

// SpeechService определяет контракт озвучивания текста
type SpeechService interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

type speechService struct {
	voice  VoiceClient
	logger *logrus.Logger
	cfg    *config.Config
}

func NewSpeechService(voice VoiceClient, logger *logrus.Logger, cfg *config.Config) SpeechService {
	return &speechService{voice: voice, logger: logger, cfg: cfg}
}

// Speak синтезирует аудио для переданного текста
func (s *speechService) Speak(ctx context.Context, text string) ([]byte, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "speech",
		"method":  "Speak",
	})

	audio, err := s.voice.Speak(ctx, text, s.cfg.ElevenLabsVoiceID)
	if err != nil {
		log.WithError(err).Error("Failed to synthesize speech")
		return nil, fmt.Errorf("service: could not synthesize speech: %w", err)
	}

	log.WithField("audio_bytes", len(audio)).Info("Speech synthesized successfully")
	return audio, nil
}
