package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meta-pytorch/orgsite/internal/core/domain"
)

var cardsJSON bool

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List project cards with GitHub star counts",
	Long: `Lists the organization's project cards sorted by stargazer count.
Star counts come from the GitHub API; set GITHUB_TOKEN to raise the
rate limit.`,
	RunE: runCards,
}

func init() {
	cardsCmd.Flags().BoolVar(&cardsJSON, "json", false, "output cards as JSON")
	rootCmd.AddCommand(cardsCmd)
}

func runCards(cmd *cobra.Command, _ []string) error {
	svc := buildCardService(cmd.Context())

	cards, err := svc.Cards(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing cards: %w", err)
	}

	if cardsJSON {
		return outputCardsJSON(cmd, cards)
	}
	return outputCardsTable(cmd, cards)
}

type cardJSON struct {
	domain.Card
	Stars int `json:"stars"`
}

func outputCardsJSON(cmd *cobra.Command, cards []domain.Card) error {
	out := make([]cardJSON, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardJSON{Card: c, Stars: c.Stars})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cards: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCardsTable(cmd *cobra.Command, cards []domain.Card) error {
	if len(cards) == 0 {
		cmd.Println("No projects found.")
		return nil
	}

	for _, c := range cards {
		cmd.Printf("  %-20s %6d ★  %s\n", c.Title, c.Stars, c.Description)
		cmd.Printf("  %-20s %s\n", "", c.GitHub)
		cmd.Println()
	}
	return nil
}
