package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// playerCommands lists local MP3 players in preference order, with the
// arguments that make each exit after playback without console noise.
var playerCommands = [][]string{
	{"afplay"},
	{"mpv", "--no-terminal"},
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// Play writes the MP3 audio to a temp file and plays it with the first
// available local player. Playback blocks until the clip finishes or
// the context is cancelled.
func Play(ctx context.Context, audio []byte) error {
	player, err := findPlayer()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "studiq-tts-*.mp3")
	if err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(audio); err != nil {
		f.Close()
		return fmt.Errorf("play audio: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}

	args := append(player[1:], f.Name())
	cmd := exec.CommandContext(ctx, player[0], args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio with %s: %w", player[0], err)
	}
	return nil
}

func findPlayer() ([]string, error) {
	for _, cand := range playerCommands {
		if _, err := exec.LookPath(cand[0]); err == nil {
			return cand, nil
		}
	}
	return nil, fmt.Errorf("no audio player found (tried afplay, mpv, mpg123, ffplay)")
}
