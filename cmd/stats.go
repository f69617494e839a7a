package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/studiq/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz history and per-section accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		summaries, err := s.EventRepo().QueryQuizSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quiz history: %w", err)
		}

		if len(summaries) == 0 {
			fmt.Println("No finished quizzes yet.")
			return nil
		}

		fmt.Println("Quiz History")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-19s  %-28s  %9s  %7s  %8s\n",
			"Timestamp", "Section", "Answered", "Grade", "Time")
		fmt.Println(strings.Repeat("─", 78))

		sections := make(map[string]bool)
		for _, q := range summaries {
			sections[q.Section] = true
			fmt.Printf("%-19s  %-28s  %4d/%-4d  %7s  %7ds\n",
				q.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(q.Section, 28),
				q.CorrectAnswers,
				q.QuestionsAnswered,
				q.Grade,
				q.DurationSecs,
			)
		}

		names := make([]string, 0, len(sections))
		for section := range sections {
			names = append(names, section)
		}
		sort.Strings(names)

		fmt.Println()
		fmt.Println("Accuracy by Section")
		fmt.Println(strings.Repeat("─", 48))
		for _, section := range names {
			acc, err := s.EventRepo().SectionAccuracy(ctx, section)
			if err != nil {
				continue
			}
			fmt.Printf("%-36s  %6.1f%%\n", truncate(section, 36), acc*100)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to show")
}
