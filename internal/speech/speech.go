// Package speech wraps the OpenAI audio API behind small synthesis and
// transcription interfaces so the rest of the app never touches the SDK.
package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Synthesizer converts text into spoken audio.
type Synthesizer interface {
	// Synthesize returns MP3 audio for the text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe reads audio from r. filename carries the extension the
	// API uses to sniff the container format.
	Transcribe(ctx context.Context, r io.Reader, filename string) (string, error)
}

// Config holds speech API settings.
type Config struct {
	APIKey   string
	BaseURL  string
	TTSModel string
	Voice    string
	STTModel string
}

// DefaultConfig returns the default models and voice.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:   apiKey,
		TTSModel: string(openai.TTSModel1),
		Voice:    string(openai.VoiceAlloy),
		STTModel: openai.Whisper1,
	}
}

// Client implements Synthesizer and Transcriber on the OpenAI audio API.
type Client struct {
	api *openai.Client
	cfg Config
}

// NewClient creates a speech client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required for speech")
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Client{api: openai.NewClientWithConfig(apiCfg), cfg: cfg}, nil
}

// Synthesize generates English MP3 audio for the text.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("synthesize: empty text")
	}
	resp, err := c.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.cfg.TTSModel),
		Input:          text,
		Voice:          openai.SpeechVoice(c.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("synthesize: read audio: %w", err)
	}
	return audio, nil
}

// Transcribe converts audio into text via Whisper.
func (c *Client) Transcribe(ctx context.Context, r io.Reader, filename string) (string, error) {
	resp, err := c.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.STTModel,
		Reader:   r,
		FilePath: filename,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return resp.Text, nil
}
