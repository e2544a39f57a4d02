package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"shiftbot/internal/domain"
	"shiftbot/internal/report"
)

// ReportsCmd manages persisted reports
type ReportsCmd struct {
	List   ReportsListCmd   `cmd:"list" help:"List a crew's reports"`
	Show   ReportsShowCmd   `cmd:"show" help:"Show a single report"`
	Log    ReportsLogCmd    `cmd:"log" help:"Show a report's change log"`
	Export ReportsExportCmd `cmd:"export" help:"Export a report to a CSV file"`
}

// ReportsListCmd lists a crew's reports ordered by report number
type ReportsListCmd struct {
	Crew  string `arg:"" help:"Crew number"`
	Since string `help:"Only show reports created on or after this date (DD.MM.YYYY)"`
}

func (r *ReportsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	svc := cli.Container.ReportService

	var reports []domain.Report
	var err error
	if r.Since != "" {
		var since time.Time
		since, err = domain.ValidateDate(r.Since)
		if err != nil {
			return err
		}
		reports, err = svc.ListByCrewSince(ctx, r.Crew, since)
	} else {
		reports, err = svc.ListByCrew(ctx, r.Crew)
	}
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		fmt.Printf("No reports for crew %s.\n", r.Crew)
		return nil
	}

	for _, rep := range reports {
		fmt.Printf("#%d  %s  well %s, field %s  (%d operations)  %s\n",
			rep.Number,
			rep.ID,
			rep.Well,
			rep.Field,
			len(rep.Operations),
			rep.CreatedAt.Format("02.01.2006 15:04"))
	}
	return nil
}

// ReportsShowCmd prints one report in full
type ReportsShowCmd struct {
	ID string `arg:"" help:"Report ID"`
}

func (r *ReportsShowCmd) Run(cli *CLI) error {
	rep, err := cli.Container.ReportService.Get(context.Background(), r.ID)
	if err != nil {
		return err
	}

	fmt.Println(report.RenderText(*rep))
	return nil
}

// ReportsLogCmd prints a report's change-log entries
type ReportsLogCmd struct {
	ID string `arg:"" help:"Report ID"`
}

func (r *ReportsLogCmd) Run(cli *CLI) error {
	entries, err := cli.Container.ReportService.Log(context.Background(), r.ID)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No change log entries.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s  %s\n",
			e.Timestamp.Format("02.01.2006 15:04:05"),
			e.Actor,
			e.Action)
	}
	return nil
}

// ReportsExportCmd writes a report's CSV export to disk
type ReportsExportCmd struct {
	ID     string `arg:"" help:"Report ID"`
	Output string `help:"Output file path (defaults to the export's suggested name)" short:"o"`
}

func (r *ReportsExportCmd) Run(cli *CLI) error {
	filename, data, err := cli.Container.ReportService.Export(context.Background(), r.ID)
	if err != nil {
		return err
	}

	path := r.Output
	if path == "" {
		path = filename
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("Exported report to %s\n", path)
	return nil
}
