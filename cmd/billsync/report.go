package main

import (
	"fmt"
	"io"

	"billsync/internal/domain"
)

const sampleTitleWidth = 60

func WriteStart(w io.Writer, congress, daysBack int, dryRun bool) {
	suffix := ""
	if dryRun {
		suffix = "[DRY RUN]"
	}
	fmt.Fprintf(w, "Starting bill sync for Congress %d (last %d days)%s\n", congress, daysBack, suffix)
}

// WriteSummary prints the five counters followed by every error line.
func WriteSummary(w io.Writer, outcome *domain.SyncOutcome) {
	fmt.Fprintf(w, "Sync completed successfully:\n"+
		"  - Bills created: %d\n"+
		"  - Bills updated: %d\n"+
		"  - Subjects created: %d\n"+
		"  - Actions created: %d\n"+
		"  - Cosponsors created: %d\n",
		outcome.BillsCreated,
		outcome.BillsUpdated,
		outcome.SubjectsCreated,
		outcome.ActionsCreated,
		outcome.CosponsorsCreated,
	)

	if len(outcome.Errors) == 0 {
		return
	}
	fmt.Fprintf(w, "Errors encountered (%d):\n", len(outcome.Errors))
	for _, e := range outcome.Errors {
		fmt.Fprintf(w, "  - %s\n", e)
	}
}

func WritePreview(w io.Writer, preview *domain.Preview, err error) {
	if err != nil {
		fmt.Fprintf(w, "DRY RUN: API test failed - %v\n", err)
		return
	}
	if preview == nil || preview.Count == 0 {
		fmt.Fprintln(w, "DRY RUN: No bills found or API error")
		return
	}

	fmt.Fprintf(w, "DRY RUN: Would sync bills from Congress.gov API\n"+
		"  - API connection successful\n"+
		"  - Found %d recent bills to process\n"+
		"  - Sample: %s...\n",
		preview.Count,
		truncate(preview.SampleTitle, sampleTitleWidth),
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
