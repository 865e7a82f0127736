package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"billsync/internal/domain"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, &domain.SyncOutcome{
		BillsCreated:      2,
		BillsUpdated:      1,
		SubjectsCreated:   3,
		ActionsCreated:    4,
		CosponsorsCreated: 5,
	})

	assert.Equal(t, "Sync completed successfully:\n"+
		"  - Bills created: 2\n"+
		"  - Bills updated: 1\n"+
		"  - Subjects created: 3\n"+
		"  - Actions created: 4\n"+
		"  - Cosponsors created: 5\n", buf.String())
}

func TestWriteSummary_Errors(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, &domain.SyncOutcome{
		Errors: []string{
			"Error syncing bill hr 1: boom",
			"Error syncing bill unknown 5: missing required field: type",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "  - Bills created: 0\n")
	assert.True(t, strings.HasSuffix(out, "Errors encountered (2):\n"+
		"  - Error syncing bill hr 1: boom\n"+
		"  - Error syncing bill unknown 5: missing required field: type\n"))
}

func TestWritePreview(t *testing.T) {
	tests := []struct {
		name    string
		preview *domain.Preview
		err     error
		want    string
	}{
		{
			name:    "found",
			preview: &domain.Preview{Count: 5, SampleTitle: strings.Repeat("x", 80)},
			want: "DRY RUN: Would sync bills from Congress.gov API\n" +
				"  - API connection successful\n" +
				"  - Found 5 recent bills to process\n" +
				"  - Sample: " + strings.Repeat("x", 60) + "...\n",
		},
		{
			name:    "empty",
			preview: &domain.Preview{},
			want:    "DRY RUN: No bills found or API error\n",
		},
		{
			name: "failed",
			err:  errors.New("status 403"),
			want: "DRY RUN: API test failed - status 403\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WritePreview(&buf, tt.preview, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteStart(t *testing.T) {
	var buf bytes.Buffer
	WriteStart(&buf, 118, 7, true)
	assert.Equal(t, "Starting bill sync for Congress 118 (last 7 days)[DRY RUN]\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 60))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "§§", truncate("§§§", 2))
}
