package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/deck"
)

var importCmd = &cobra.Command{
	Use:   "import <path|url>",
	Short: "Import a keyword/answer deck into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		sum, _ := cmd.Flags().GetString("sha256")
		sums, _ := cmd.Flags().GetString("checksums")

		d, err := deck.NewLoader(nil).Load(cmd.Context(), deck.Source{
			Location:  args[0],
			SHA256:    sum,
			Checksums: sums,
		})
		if err != nil {
			return err
		}

		st, _, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := deck.Import(cmd.Context(), d, st.KeywordRepo(), st.AnswerRepo())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d keywords and %d answers.\n", res.Keywords, res.Answers)
		return nil
	},
}

func init() {
	importCmd.Flags().String("sha256", "", "Expected SHA-256 hex digest of the deck file")
	importCmd.Flags().String("checksums", "", "Path or URL of a checksums listing to verify against")
}
