package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billsync/internal/domain"
	"billsync/internal/source/congress"
)

type billDetails struct {
	detail     *congress.BillDetail
	subjects   []domain.Subject
	actions    []domain.Action
	cosponsors []domain.Cosponsor
}

func (s *SyncService) fetchDetails(ctx context.Context, key domain.BillKey) (*billDetails, error) {
	detail, err := s.source.FetchBillDetail(ctx, key.Congress, key.Type, key.Number)
	if err != nil {
		return nil, fmt.Errorf("bill: %w", err)
	}

	actions, err := s.source.FetchBillActions(ctx, key.Congress, key.Type, key.Number)
	if err != nil {
		return nil, fmt.Errorf("actions: %w", err)
	}

	cosponsors, err := s.source.FetchBillCosponsors(ctx, key.Congress, key.Type, key.Number)
	if err != nil {
		return nil, fmt.Errorf("cosponsors: %w", err)
	}

	subjects, err := s.source.FetchBillSubjects(ctx, key.Congress, key.Type, key.Number)
	if err != nil {
		return nil, fmt.Errorf("subjects: %w", err)
	}

	return &billDetails{
		detail:     detail,
		subjects:   convertSubjects(subjects, detail.PolicyArea),
		actions:    s.convertActions(key, actions),
		cosponsors: s.convertCosponsors(key, cosponsors),
	}, nil
}

// applyTo fills sponsor, chamber and milestone fields and derives the status.
func (d *billDetails) applyTo(bill *domain.Bill) {
	detail := d.detail

	switch strings.ToLower(detail.OriginChamber) {
	case domain.ChamberHouse:
		bill.Chamber = domain.ChamberHouse
	case domain.ChamberSenate:
		bill.Chamber = domain.ChamberSenate
	}

	if detail.Title != "" && bill.Title == "" {
		bill.Title = detail.Title
	}

	if len(detail.Sponsors) > 0 {
		sponsor := detail.Sponsors[0]
		bill.SponsorName = sponsor.FullName
		bill.SponsorParty = sponsor.Party
		bill.SponsorState = sponsor.State
		bill.SponsorBioguideID = sponsor.BioguideID
	}

	if detail.IntroducedDate != "" {
		if t, err := parseDate(detail.IntroducedDate); err == nil {
			bill.IntroducedDate = &t
		}
	}

	vetoed := applyMilestones(bill, d.actions)
	bill.Status = deriveStatus(bill, vetoed, len(detail.Laws) > 0)
}

// applyMilestones sets passage and enactment dates from the action history and
// reports whether the bill stands vetoed.
func applyMilestones(bill *domain.Bill, actions []domain.Action) bool {
	var vetoedAt, overriddenAt *time.Time

	for i := range actions {
		a := &actions[i]
		text := strings.ToLower(a.Description)

		switch {
		case strings.Contains(text, "passed house"), strings.Contains(text, "passed/agreed to in house"):
			bill.HousePassageDate = earliest(bill.HousePassageDate, a.ActionDate)
		case strings.Contains(text, "passed senate"), strings.Contains(text, "passed/agreed to in senate"):
			bill.SenatePassageDate = earliest(bill.SenatePassageDate, a.ActionDate)
		case strings.Contains(text, "became public law"):
			bill.EnactedDate = earliest(bill.EnactedDate, a.ActionDate)
		}

		switch a.ActionType {
		case domain.ActionVetoed:
			vetoedAt = latest(vetoedAt, a.ActionDate)
		case domain.ActionOverride:
			overriddenAt = latest(overriddenAt, a.ActionDate)
		}
	}

	return vetoedAt != nil && (overriddenAt == nil || overriddenAt.Before(*vetoedAt))
}

func deriveStatus(bill *domain.Bill, vetoed, hasLaw bool) string {
	switch {
	case bill.EnactedDate != nil || hasLaw:
		return domain.StatusEnacted
	case vetoed:
		return domain.StatusVetoed
	case bill.SenatePassageDate != nil && (bill.HousePassageDate == nil || bill.SenatePassageDate.After(*bill.HousePassageDate)):
		return domain.StatusPassedSenate
	case bill.HousePassageDate != nil:
		return domain.StatusPassedHouse
	case bill.Status == "":
		return domain.StatusIntroduced
	default:
		return bill.Status
	}
}

// classifyAction maps an upstream action onto the stored action types.
func classifyAction(actionType, text string) string {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "over veto"), strings.Contains(t, "override"):
		return domain.ActionOverride
	case strings.Contains(t, "vetoed"), actionType == "Veto":
		return domain.ActionVetoed
	case strings.Contains(t, "became public law"), strings.Contains(t, "signed by president"), actionType == "BecameLaw":
		return domain.ActionSigned
	case strings.Contains(t, "introduced"):
		return domain.ActionIntroduced
	case strings.Contains(t, "referred to"):
		return domain.ActionReferred
	case strings.Contains(t, "reported"):
		return domain.ActionReported
	case strings.Contains(t, "failed"):
		return domain.ActionFailed
	case strings.Contains(t, "passed"), strings.Contains(t, "agreed to"):
		return domain.ActionPassed
	case strings.Contains(t, "amendment"), strings.Contains(t, "amended"):
		return domain.ActionAmended
	}

	switch actionType {
	case "IntroReferral":
		return domain.ActionReferred
	case "Committee":
		return domain.ActionReported
	case "President":
		return domain.ActionSigned
	}
	return domain.ActionOther
}

func actionChamber(rec *congress.ActionRecord) string {
	if rec.SourceSystem == nil {
		return ""
	}
	name := strings.ToLower(rec.SourceSystem.Name)
	switch {
	case strings.HasPrefix(name, "house"):
		return domain.ChamberHouse
	case strings.HasPrefix(name, "senate"):
		return domain.ChamberSenate
	}
	return ""
}

func (s *SyncService) convertActions(key domain.BillKey, records []congress.ActionRecord) []domain.Action {
	actions := make([]domain.Action, 0, len(records))

	for i := range records {
		rec := &records[i]
		date, err := parseDate(rec.ActionDate)
		if err != nil {
			s.logger.Warn("skipping action with unparseable date",
				"bill", key.String(),
				"action_date", rec.ActionDate,
			)
			continue
		}

		actions = append(actions, domain.Action{
			ActionType:  classifyAction(rec.Type, rec.Text),
			ActionDate:  date,
			Description: rec.Text,
			Chamber:     actionChamber(rec),
		})
	}

	return actions
}

func (s *SyncService) convertCosponsors(key domain.BillKey, records []congress.CosponsorRecord) []domain.Cosponsor {
	cosponsors := make([]domain.Cosponsor, 0, len(records))

	for _, rec := range records {
		if rec.BioguideID == "" {
			s.logger.Warn("skipping cosponsor without bioguide id", "bill", key.String(), "name", rec.FullName)
			continue
		}

		c := domain.Cosponsor{
			Name:       rec.FullName,
			Party:      rec.Party,
			State:      rec.State,
			BioguideID: rec.BioguideID,
		}
		if t, err := parseDate(rec.SponsorshipDate); err == nil {
			c.SponsoredDate = &t
		}
		if t, err := parseDate(rec.SponsorshipWithdrawnDate); err == nil {
			c.WithdrawnDate = &t
		}

		cosponsors = append(cosponsors, c)
	}

	return cosponsors
}

func convertSubjects(rec *congress.SubjectsRecord, detailArea *congress.PolicyArea) []domain.Subject {
	var policyArea string
	switch {
	case rec != nil && rec.PolicyArea != nil:
		policyArea = rec.PolicyArea.Name
	case detailArea != nil:
		policyArea = detailArea.Name
	}

	var subjects []domain.Subject
	if policyArea != "" {
		subjects = append(subjects, domain.Subject{Name: policyArea, PolicyArea: policyArea})
	}
	if rec != nil {
		for _, ls := range rec.LegislativeSubjects {
			if ls.Name == "" {
				continue
			}
			subjects = append(subjects, domain.Subject{Name: ls.Name, PolicyArea: policyArea})
		}
	}

	return subjects
}

func earliest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.Before(*current) {
		return &candidate
	}
	return current
}

func latest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		return &candidate
	}
	return current
}
