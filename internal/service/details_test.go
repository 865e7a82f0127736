package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"billsync/internal/domain"
	"billsync/internal/source/congress"
)

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name       string
		actionType string
		text       string
		want       string
	}{
		{"introduced", "IntroReferral", "Introduced in House", domain.ActionIntroduced},
		{"referred", "IntroReferral", "Referred to the Committee on Ways and Means.", domain.ActionReferred},
		{"reported", "Committee", "Reported by the Committee on Finance.", domain.ActionReported},
		{"passed", "Floor", "Passed Senate without amendment by Unanimous Consent.", domain.ActionPassed},
		{"agreed to", "Floor", "Resolution agreed to in Senate.", domain.ActionPassed},
		{"failed", "Floor", "On passage Failed by the Yeas and Nays.", domain.ActionFailed},
		{"amendment", "Floor", "Amendment SA 12 proposed by Senator Doe.", domain.ActionAmended},
		{"signed", "President", "Signed by President.", domain.ActionSigned},
		{"public law", "BecameLaw", "Became Public Law No: 118-5.", domain.ActionSigned},
		{"vetoed", "Veto", "Vetoed by President.", domain.ActionVetoed},
		{"override", "Floor", "Passed House over veto.", domain.ActionOverride},
		{"type fallback", "Committee", "Hearings held.", domain.ActionReported},
		{"other", "Calendars", "Placed on the Union Calendar.", domain.ActionOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyAction(tt.actionType, tt.text))
		})
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyTo_Status(t *testing.T) {
	tests := []struct {
		name    string
		actions []domain.Action
		laws    []congress.Law
		want    string
	}{
		{
			name: "introduced only",
			actions: []domain.Action{
				{ActionType: domain.ActionIntroduced, ActionDate: day(2023, 1, 9), Description: "Introduced in Senate"},
			},
			want: domain.StatusIntroduced,
		},
		{
			name: "passed both chambers, senate last",
			actions: []domain.Action{
				{ActionType: domain.ActionPassed, ActionDate: day(2023, 3, 1), Description: "Passed/agreed to in House: On passage"},
				{ActionType: domain.ActionPassed, ActionDate: day(2023, 4, 1), Description: "Passed/agreed to in Senate: Passed Senate"},
			},
			want: domain.StatusPassedSenate,
		},
		{
			name: "vetoed",
			actions: []domain.Action{
				{ActionType: domain.ActionPassed, ActionDate: day(2023, 3, 1), Description: "Passed House"},
				{ActionType: domain.ActionVetoed, ActionDate: day(2023, 5, 1), Description: "Vetoed by President."},
			},
			want: domain.StatusVetoed,
		},
		{
			name: "veto overridden",
			actions: []domain.Action{
				{ActionType: domain.ActionVetoed, ActionDate: day(2023, 5, 1), Description: "Vetoed by President."},
				{ActionType: domain.ActionOverride, ActionDate: day(2023, 6, 1), Description: "Passed House over veto."},
			},
			want: domain.StatusPassedHouse,
		},
		{
			name: "enacted",
			actions: []domain.Action{
				{ActionType: domain.ActionSigned, ActionDate: day(2023, 7, 1), Description: "Became Public Law No: 118-5."},
			},
			want: domain.StatusEnacted,
		},
		{
			name: "law without action",
			laws: []congress.Law{{Number: "118-5", Type: "Public Law"}},
			want: domain.StatusEnacted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := &domain.Bill{Status: domain.StatusIntroduced}
			details := &billDetails{
				detail:  &congress.BillDetail{OriginChamber: "Senate", Laws: tt.laws},
				actions: tt.actions,
			}

			details.applyTo(bill)

			assert.Equal(t, tt.want, bill.Status)
			assert.Equal(t, domain.ChamberSenate, bill.Chamber)
		})
	}
}

func TestApplyTo_EnactedDate(t *testing.T) {
	bill := &domain.Bill{}
	details := &billDetails{
		detail: &congress.BillDetail{IntroducedDate: "2023-01-09"},
		actions: []domain.Action{
			{ActionType: domain.ActionSigned, ActionDate: day(2023, 7, 1), Description: "Became Public Law No: 118-5."},
		},
	}

	details.applyTo(bill)

	if assert.NotNil(t, bill.EnactedDate) {
		assert.Equal(t, day(2023, 7, 1), *bill.EnactedDate)
	}
	if assert.NotNil(t, bill.IntroducedDate) {
		assert.Equal(t, day(2023, 1, 9), *bill.IntroducedDate)
	}
}

func TestConvertSubjects(t *testing.T) {
	got := convertSubjects(&congress.SubjectsRecord{
		LegislativeSubjects: []congress.PolicyArea{{Name: "Income tax"}, {Name: ""}},
	}, &congress.PolicyArea{Name: "Taxation"})

	assert.Equal(t, []domain.Subject{
		{Name: "Taxation", PolicyArea: "Taxation"},
		{Name: "Income tax", PolicyArea: "Taxation"},
	}, got)

	assert.Empty(t, convertSubjects(nil, nil))
}
