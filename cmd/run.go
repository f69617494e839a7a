package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/studiq/internal/app"
	"github.com/abhisek/studiq/internal/curriculum"
	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/quiz"
	"github.com/abhisek/studiq/internal/speech"
	"github.com/abhisek/studiq/internal/store"
	"github.com/abhisek/studiq/internal/studymap"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	snapRepo := st.SnapshotRepo()

	// Restore the workspace from the most recent snapshot.
	snap, err := snapRepo.Latest(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load workspace snapshot:", err)
	}
	workspace := store.RestoreWorkspace(snap)

	opts := app.Options{
		Workspace:    workspace,
		EventRepo:    eventRepo,
		SnapshotRepo: snapRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Curriculum = curriculum.NewService(provider, curriculum.DefaultConfig())
		opts.StudyMap = studymap.NewService(provider, studymap.DefaultConfig())
		gen := quiz.NewLLMGenerator(provider, quiz.DefaultConfig())
		opts.Quiz = quiz.NewService(workspace, gen, eventRepo)
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		synth, err := speech.NewClient(speech.DefaultConfig(key))
		if err == nil {
			opts.Synth = synth
		}
	}

	return app.Run(opts)
}
