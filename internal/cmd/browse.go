package cmd

import (
	"context"
	"fmt"

	"shiftbot/internal/ui"
)

// BrowseCmd opens the interactive report browser for one crew
type BrowseCmd struct {
	Crew string `arg:"" help:"Crew number"`
}

func (b *BrowseCmd) Run(cli *CLI) error {
	reports, err := cli.Container.ReportService.ListByCrew(context.Background(), b.Crew)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	return ui.Run(b.Crew, reports)
}
