package domain

import (
	"fmt"
	"time"
)

const (
	ChamberHouse  = "house"
	ChamberSenate = "senate"
	ChamberJoint  = "joint"
)

const (
	StatusIntroduced   = "introduced"
	StatusPassedHouse  = "passed_house"
	StatusPassedSenate = "passed_senate"
	StatusEnacted      = "enacted"
	StatusVetoed       = "vetoed"
	StatusDead         = "dead"
)

const (
	ActionIntroduced = "introduced"
	ActionReferred   = "referred"
	ActionReported   = "reported"
	ActionPassed     = "passed"
	ActionFailed     = "failed"
	ActionAmended    = "amended"
	ActionSigned     = "signed"
	ActionVetoed     = "vetoed"
	ActionOverride   = "override"
	ActionOther      = "other"
)

// BillKey is the natural key of a bill.
type BillKey struct {
	Congress int
	Type     string
	Number   string
}

// String returns the URL-friendly slug, e.g. "118-hr-1234".
func (k BillKey) String() string {
	return fmt.Sprintf("%d-%s-%s", k.Congress, k.Type, k.Number)
}

type Bill struct {
	ID                int64      `db:"id" json:"id"`
	Congress          int        `db:"congress_number" json:"congress"`
	BillType          string     `db:"bill_type" json:"bill_type"`
	BillNumber        string     `db:"bill_number" json:"bill_number"`
	Chamber           string     `db:"chamber" json:"chamber"`
	Title             string     `db:"title" json:"title"`
	ShortTitle        string     `db:"short_title" json:"short_title"`
	Summary           string     `db:"summary" json:"summary"`
	Status            string     `db:"status" json:"status"`
	LatestAction      string     `db:"latest_action" json:"latest_action"`
	LatestActionDate  *time.Time `db:"latest_action_date" json:"latest_action_date,omitempty"`
	SponsorName       string     `db:"sponsor_name" json:"sponsor_name"`
	SponsorParty      string     `db:"sponsor_party" json:"sponsor_party"`
	SponsorState      string     `db:"sponsor_state" json:"sponsor_state"`
	SponsorBioguideID string     `db:"sponsor_bioguide_id" json:"sponsor_bioguide_id"`
	CongressURL       string     `db:"congress_url" json:"congress_url"`
	PropublicaID      *string    `db:"propublica_id" json:"propublica_id,omitempty"`
	GovtrackID        string     `db:"govtrack_id" json:"govtrack_id"`
	IntroducedDate    *time.Time `db:"introduced_date" json:"introduced_date,omitempty"`
	HousePassageDate  *time.Time `db:"house_passage_date" json:"house_passage_date,omitempty"`
	SenatePassageDate *time.Time `db:"senate_passage_date" json:"senate_passage_date,omitempty"`
	EnactedDate       *time.Time `db:"enacted_date" json:"enacted_date,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
	LastSynced        time.Time  `db:"last_synced" json:"last_synced"`
}

// Key returns the natural key of the bill.
func (b *Bill) Key() BillKey {
	return BillKey{Congress: b.Congress, Type: b.BillType, Number: b.BillNumber}
}

type Subject struct {
	ID         int64     `db:"id" json:"id"`
	BillID     int64     `db:"bill_id" json:"bill_id"`
	Name       string    `db:"name" json:"name"`
	PolicyArea string    `db:"policy_area" json:"policy_area"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type Action struct {
	ID          int64     `db:"id" json:"id"`
	BillID      int64     `db:"bill_id" json:"bill_id"`
	ActionType  string    `db:"action_type" json:"action_type"`
	ActionDate  time.Time `db:"action_date" json:"action_date"`
	Description string    `db:"description" json:"description"`
	Chamber     string    `db:"chamber" json:"chamber"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Cosponsor struct {
	ID            int64      `db:"id" json:"id"`
	BillID        int64      `db:"bill_id" json:"bill_id"`
	Name          string     `db:"name" json:"name"`
	Party         string     `db:"party" json:"party"`
	State         string     `db:"state" json:"state"`
	BioguideID    string     `db:"bioguide_id" json:"bioguide_id"`
	SponsoredDate *time.Time `db:"sponsored_date" json:"sponsored_date,omitempty"`
	WithdrawnDate *time.Time `db:"withdrawn_date" json:"withdrawn_date,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// BillFilter narrows bill listings. Zero values mean "any".
type BillFilter struct {
	Congress int
	BillType string
	Limit    int
	Offset   int
}
