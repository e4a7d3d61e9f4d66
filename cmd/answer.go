package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/docs"
)

var answerCmd = &cobra.Command{
	Use:   "answer <problem>",
	Short: "Look up an exam answer by problem id (round*100 + number)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		problem, err := strconv.Atoi(args[0])
		if err != nil || problem <= 100 {
			return fmt.Errorf("invalid problem id %q", args[0])
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var src docs.AnswerSource
		if cfg.RemoteURL != "" {
			src = docs.NewClient(cfg.ClientConfig())
		} else {
			st, _, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			src = st.AnswerRepo()
		}

		ans, err := src.FetchAnswer(cmd.Context(), problem)
		if errors.Is(err, docs.ErrNotFound) {
			return fmt.Errorf("no answer for problem %d", problem)
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Round %d · Problem %d\n\n", ans.Round(), ans.Number())
		fmt.Fprintf(out, "Answer: %d\n\n", ans.Answer)
		fmt.Fprintf(out, "Commentary\n%s\n\n", ans.Commentary)
		fmt.Fprintf(out, "Wrong choices\n%s\n", ans.WrongCommentary)
		return nil
	},
}
