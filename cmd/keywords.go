package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/session"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "List the keyword collection (optionally filtered)",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		var src docs.KeywordSource
		if cfg.RemoteURL != "" {
			src = docs.NewClient(cfg.ClientConfig())
		} else {
			st, _, err := openStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			src = st.KeywordRepo()
		}

		entries, err := src.FetchKeywords(cmd.Context())
		if err != nil {
			return err
		}
		if search != "" {
			entries = lo.Filter(entries, func(e session.Entry, _ int) bool {
				return strings.Contains(e.Keyword, search) || strings.Contains(e.Explanation, search)
			})
			if len(entries) == 0 {
				return fmt.Errorf("no keywords matching %q", search)
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEYWORD\tLETTERS\tEXPLANATION")
		fmt.Fprintln(w, "-------\t-------\t-----------")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%s\n", e.Keyword, len([]rune(e.Keyword)), e.Explanation)
		}
		w.Flush()

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d keywords\n", len(entries))
		return nil
	},
}

func init() {
	keywordsCmd.Flags().String("search", "", "Only show entries whose keyword or explanation contains this text")
}
