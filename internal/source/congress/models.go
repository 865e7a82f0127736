package congress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// BillNumber accepts either a JSON string or a JSON number.
type BillNumber string

func (n *BillNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = BillNumber(s)
		return nil
	}
	var i int64
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("bill number: %w", err)
	}
	*n = BillNumber(strconv.FormatInt(i, 10))
	return nil
}

type billsResponse struct {
	Bills *[]BillRecord `json:"bills"`
}

// BillRecord is one entry of the bill listing.
type BillRecord struct {
	Congress      *int          `json:"congress"`
	Type          string        `json:"type"`
	Number        BillNumber    `json:"number"`
	Title         string        `json:"title"`
	URL           string        `json:"url"`
	OriginChamber string        `json:"originChamber"`
	UpdateDate    string        `json:"updateDate"`
	LatestAction  *LatestAction `json:"latestAction"`
}

type LatestAction struct {
	Text       string `json:"text"`
	ActionDate string `json:"actionDate"`
}

type billDetailResponse struct {
	Bill *BillDetail `json:"bill"`
}

type BillDetail struct {
	Congress       *int          `json:"congress"`
	Type           string        `json:"type"`
	Number         BillNumber    `json:"number"`
	Title          string        `json:"title"`
	OriginChamber  string        `json:"originChamber"`
	IntroducedDate string        `json:"introducedDate"`
	PolicyArea     *PolicyArea   `json:"policyArea"`
	Sponsors       []Member      `json:"sponsors"`
	LatestAction   *LatestAction `json:"latestAction"`
	Laws           []Law         `json:"laws"`
	Titles         *ItemCount    `json:"titles"`
}

type PolicyArea struct {
	Name string `json:"name"`
}

type Member struct {
	BioguideID string `json:"bioguideId"`
	FullName   string `json:"fullName"`
	Party      string `json:"party"`
	State      string `json:"state"`
}

type Law struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type ItemCount struct {
	Count int    `json:"count"`
	URL   string `json:"url"`
}

type actionsResponse struct {
	Actions *[]ActionRecord `json:"actions"`
}

type ActionRecord struct {
	ActionCode   string        `json:"actionCode"`
	ActionDate   string        `json:"actionDate"`
	Text         string        `json:"text"`
	Type         string        `json:"type"`
	SourceSystem *SourceSystem `json:"sourceSystem"`
}

type SourceSystem struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type cosponsorsResponse struct {
	Cosponsors *[]CosponsorRecord `json:"cosponsors"`
}

type CosponsorRecord struct {
	Member
	SponsorshipDate          string `json:"sponsorshipDate"`
	SponsorshipWithdrawnDate string `json:"sponsorshipWithdrawnDate"`
	IsOriginalCosponsor      bool   `json:"isOriginalCosponsor"`
}

type subjectsResponse struct {
	Subjects *SubjectsRecord `json:"subjects"`
}

type SubjectsRecord struct {
	LegislativeSubjects []PolicyArea `json:"legislativeSubjects"`
	PolicyArea          *PolicyArea  `json:"policyArea"`
}
