package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, _, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		recs, err := st.EventRepo().QuerySessionSummaries(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No games played yet.")
			return nil
		}

		best := lo.MaxBy(recs, func(a, b store.SessionRecord) bool { return a.Score > b.Score })
		cleared := lo.CountBy(recs, func(r store.SessionRecord) bool { return r.Outcome == "exhausted" })
		scored := lo.SumBy(recs, func(r store.SessionRecord) int { return r.Score })

		fmt.Fprintf(out, "Games played:  %d\n", len(recs))
		fmt.Fprintf(out, "Cleared:       %d\n", cleared)
		fmt.Fprintf(out, "Best score:    %d\n", best.Score)
		fmt.Fprintf(out, "Average score: %.1f\n\n", float64(scored)/float64(len(recs)))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tOUTCOME\tSCORE\tSKIPPED\tTIME")
		for _, r := range lo.Subset(recs, 0, uint(limit)) {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%d:%02d\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.Outcome, r.Score, r.Total, r.Skipped,
				r.DurationSecs/60, r.DurationSecs%60)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent games to list")
}
