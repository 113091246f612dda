package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type whisperTranscriber struct {
	client *openai.Client
	model  string
}

func NewWhisperTranscriber(apiKey string) TranscriptionService {
	return &whisperTranscriber{
		client: openai.NewClient(apiKey),
		model:  openai.Whisper1,
	}
}

// Transcribe implements TranscriptionService. The filename is only used
// so the API can infer the audio container format.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		return "", fmt.Errorf("transcription returned no text")
	}

	return transcript, nil
}
