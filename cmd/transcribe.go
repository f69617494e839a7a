package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/studiq/internal/speech"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio file to text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for transcription")
		}

		client, err := speech.NewClient(speech.DefaultConfig(key))
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open audio file: %w", err)
		}
		defer f.Close()

		text, err := client.Transcribe(cmd.Context(), f, filepath.Base(args[0]))
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}
