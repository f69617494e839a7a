package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/studiq/internal/curriculum"
	"github.com/abhisek/studiq/internal/llm"
	"github.com/abhisek/studiq/internal/store"
	"github.com/spf13/cobra"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum <subject>",
	Short: "Generate a study curriculum and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject := args[0]
		asJSON, _ := cmd.Flags().GetBool("json")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := curriculum.NewService(provider, curriculum.DefaultConfig())
		sections, err := svc.Generate(cmd.Context(), subject)
		if err != nil {
			return err
		}

		if asJSON {
			out := struct {
				Subject  string `json:"subject"`
				Sections any    `json:"sections"`
			}{Subject: subject, Sections: sections}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Printf("Curriculum for %q\n\n", subject)
		for _, sec := range sections {
			fmt.Println(sec.Name)
			fmt.Println(strings.Repeat("─", len(sec.Name)))
			for _, topic := range sec.Topics {
				fmt.Println("  -", topic)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	curriculumCmd.Flags().Bool("json", false, "Print the curriculum as JSON")
}
