package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/retomath/internal/llm"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/session"
	"github.com/abhisek/retomath/internal/ui/components"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview one generated batch of questions (no profile)",
	Long: `Generate one batch for a grade and answer it interactively.

This is a stateless developer tool: no coins, no streak, no event log.
When generation fails the error is printed and the offline questions are
shown instead, exactly as the game would fall back.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("grade", "3", "Grade 1-5")
	previewCmd.Flags().String("lang", "es", "Question language: es or en")
	previewCmd.Flags().Int("count", session.BatchSize, "Number of questions to generate")
	previewCmd.Flags().Bool("answer", true, "Prompt for an answer after each question")
}

func runPreview(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetString("grade")
	langVal, _ := cmd.Flags().GetString("lang")
	count, _ := cmd.Flags().GetInt("count")
	interactive, _ := cmd.Flags().GetBool("answer")

	grade, err := problemgen.ParseGrade(gradeVal)
	if err != nil {
		return err
	}
	lang, ok := locale.Parse(langVal)
	if !ok {
		return fmt.Errorf("unsupported language %q: must be es or en", langVal)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.LogMode, "")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx := cmd.Context()
	bank := problemgen.DefaultBank()

	// No event repo: preview calls are not logged.
	var provider llm.Provider
	if p, err := llm.NewProvider(ctx, cfg.LLM, nil, log); err == nil {
		provider = p
	} else if !errors.Is(err, llm.ErrNotConfigured) {
		return fmt.Errorf("LLM provider: %w", err)
	}
	src := problemgen.NewSource(provider, bank, problemgen.DefaultConfig(), log)

	fmt.Printf("%s (%s)\n", grade.Label(), lang)
	fmt.Printf("Generating %d questions...\n\n", count)

	qs, err := src.Generate(ctx, grade, lang, count)
	if err != nil {
		fmt.Printf("Generation failed: %v\n", err)
		fmt.Printf("Showing offline questions instead.\n\n")
		qs = bank.Questions(lang)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct, answered int

	for i, q := range qs {
		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(qs), q.Difficulty)
		fmt.Println(q.Text)
		for j, o := range q.Options {
			fmt.Printf("  %s) %s\n", components.OptionLabels[j], o)
		}

		if interactive {
			fmt.Print("\nYour answer: ")
			if !scanner.Scan() {
				fmt.Println("\n(input closed)")
				break
			}
			key := strings.ToLower(strings.TrimSpace(scanner.Text()))
			idx, ok := components.OptionIndex(key, len(q.Options))
			if !ok {
				fmt.Println("(skipped)")
			} else {
				answered++
				if q.IsCorrect(idx) {
					correct++
					fmt.Println("\033[32m✓ Correct!\033[0m")
				} else {
					fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s) %s\n",
						components.OptionLabels[q.CorrectIndex], q.Options[q.CorrectIndex])
				}
			}
		} else {
			fmt.Printf("\nAnswer: %s) %s\n", components.OptionLabels[q.CorrectIndex], q.Options[q.CorrectIndex])
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	if interactive {
		fmt.Printf("── Summary: %d/%d correct ──\n", correct, answered)
	}
	return nil
}
