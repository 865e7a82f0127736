package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"billsync/internal/config"
	"billsync/internal/domain"
	"billsync/internal/service/mocks"
	"billsync/internal/source/congress"
	"billsync/testdata/utils"
)

type SyncServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source     *mocks.MockBillSource
	bills      *mocks.MockBillStore
	subjects   *mocks.MockSubjectStore
	actions    *mocks.MockActionStore
	cosponsors *mocks.MockCosponsorStore
	syncState  *mocks.MockSyncStateStore
	txManager  *mocks.MockTransactionManager
	publisher  *mocks.MockPublisher

	service *SyncService
	cfg     config.SyncConfig
	logger  *slog.Logger
}

func (s *SyncServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockBillSource(s.ctrl)
	s.bills = mocks.NewMockBillStore(s.ctrl)
	s.subjects = mocks.NewMockSubjectStore(s.ctrl)
	s.actions = mocks.NewMockActionStore(s.ctrl)
	s.cosponsors = mocks.NewMockCosponsorStore(s.ctrl)
	s.syncState = mocks.NewMockSyncStateStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{
		Congress: 118,
		DaysBack: 7,
		PageSize: 250,
		Interval: time.Hour,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = s.newService(s.publisher, nil, s.cfg)
}

func (s *SyncServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSyncServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SyncServiceTestSuite))
}

func (s *SyncServiceTestSuite) newService(publisher Publisher, observer OutcomeObserver, cfg config.SyncConfig) *SyncService {
	return NewSyncService(
		s.source,
		Stores{
			Bills:      s.bills,
			Subjects:   s.subjects,
			Actions:    s.actions,
			Cosponsors: s.cosponsors,
			SyncState:  s.syncState,
			Tx:         s.txManager,
		},
		publisher,
		observer,
		s.logger,
		cfg,
	)
}

func (s *SyncServiceTestSuite) expectTransactions(times int) {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(times)
}

func (s *SyncServiceTestSuite) expectSyncState() {
	s.syncState.EXPECT().Get(gomock.Any(), "congress-118").Return(&domain.SyncState{SourceID: "congress-118"}, nil)
	s.syncState.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
}

func (s *SyncServiceTestSuite) expectCreate(id int64) {
	s.bills.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, bill *domain.Bill) error {
			bill.ID = id
			return nil
		},
	)
}

func record(billType, number, title string) congress.BillRecord {
	return congress.BillRecord{
		Congress: utils.Ptr(118),
		Type:     billType,
		Number:   congress.BillNumber(number),
		Title:    title,
		URL:      "https://api.congress.gov/v3/bill/118/" + billType + "/" + number,
	}
}

func (s *SyncServiceTestSuite) TestSync_CreatesAndUpdates() {
	ctx := context.Background()

	records := []congress.BillRecord{
		record("HR", "1", "First"),
		record("HR", "2", "Second"),
		record("S", "3", "Third, renamed"),
	}
	existing := &domain.Bill{ID: 7, Congress: 118, BillType: "s", BillNumber: "3", Title: "Third", Status: domain.StatusIntroduced}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(records, nil)
	s.expectTransactions(3)

	s.bills.EXPECT().GetByKey(ctx, domain.BillKey{Congress: 118, Type: "hr", Number: "1"}).Return(nil, nil)
	s.bills.EXPECT().GetByKey(ctx, domain.BillKey{Congress: 118, Type: "hr", Number: "2"}).Return(nil, nil)
	s.bills.EXPECT().GetByKey(ctx, domain.BillKey{Congress: 118, Type: "s", Number: "3"}).Return(existing, nil)

	s.expectCreate(1)
	s.expectCreate(2)
	s.bills.EXPECT().Update(ctx, existing).Return(nil)

	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(2)
	s.publisher.EXPECT().Publish(ctx, existing, false).Return(nil)

	s.syncState.EXPECT().Get(ctx, "congress-118").Return(&domain.SyncState{SourceID: "congress-118", TotalSynced: 10}, nil)
	s.syncState.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			s.Equal(int64(13), state.TotalSynced)
			s.Equal(0, state.LastRunErrors)
			return nil
		},
	)

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal(3, outcome.Fetched)
	s.Equal(2, outcome.BillsCreated)
	s.Equal(1, outcome.BillsUpdated)
	s.Equal(0, outcome.SubjectsCreated)
	s.Equal(0, outcome.ActionsCreated)
	s.Equal(0, outcome.CosponsorsCreated)
	s.Equal("Third, renamed", existing.Title)
	s.Equal(int64(7), existing.ID)
}

func (s *SyncServiceTestSuite) TestSync_NewBillFields() {
	ctx := context.Background()

	rec := record("HR", "1234", "A bill to do things")
	rec.LatestAction = &congress.LatestAction{Text: "Referred to committee", ActionDate: "2024-03-15"}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{rec}, nil)
	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil)

	var created *domain.Bill
	s.bills.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, bill *domain.Bill) error {
			created = bill
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Require().NotNil(created)
	s.Equal("hr", created.BillType)
	s.Equal("1234", created.BillNumber)
	s.Equal(domain.ChamberHouse, created.Chamber)
	s.Equal(domain.StatusIntroduced, created.Status)
	s.Equal("Referred to committee", created.LatestAction)
	s.Require().NotNil(created.LatestActionDate)
	s.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *created.LatestActionDate)
	s.False(created.LastSynced.IsZero())
}

func (s *SyncServiceTestSuite) TestSync_UnparseableDateKeepsStoredValue() {
	ctx := context.Background()

	stored := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	existing := &domain.Bill{
		ID: 9, Congress: 118, BillType: "hr", BillNumber: "5",
		Title: "Keep me", CongressURL: "https://example.test/hr5",
		LatestAction: "Old action", LatestActionDate: &stored,
	}

	rec := congress.BillRecord{
		Type:         "hr",
		Number:       "5",
		LatestAction: &congress.LatestAction{Text: "New action", ActionDate: "not-a-date"},
	}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{rec}, nil)
	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, domain.BillKey{Congress: 118, Type: "hr", Number: "5"}).Return(existing, nil)
	s.bills.EXPECT().Update(ctx, existing).Return(nil)
	s.publisher.EXPECT().Publish(ctx, existing, false).Return(nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal(1, outcome.BillsUpdated)
	s.Equal("Keep me", existing.Title)
	s.Equal("https://example.test/hr5", existing.CongressURL)
	s.Equal("New action", existing.LatestAction)
	s.Require().NotNil(existing.LatestActionDate)
	s.Equal(stored, *existing.LatestActionDate)
}

func (s *SyncServiceTestSuite) TestSync_MalformedItemIsIsolated() {
	ctx := context.Background()

	records := []congress.BillRecord{
		record("HR", "1", "First"),
		{Number: "5", Title: "No type"},
		record("HR", "3", "Third"),
	}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(records, nil)
	s.expectTransactions(2)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil).Times(2)
	s.expectCreate(1)
	s.expectCreate(3)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(2)

	s.syncState.EXPECT().Get(ctx, "congress-118").Return(&domain.SyncState{SourceID: "congress-118"}, nil)
	s.syncState.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SyncState) error {
			s.Equal(1, state.LastRunErrors)
			return nil
		},
	)

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal(2, outcome.BillsCreated)
	s.Equal(0, outcome.BillsUpdated)
	s.Require().Len(outcome.Errors, 1)
	s.Equal("Error syncing bill unknown 5: missing required field: type", outcome.Errors[0])
}

func (s *SyncServiceTestSuite) TestSync_StoreErrorIsIsolated() {
	ctx := context.Background()

	records := []congress.BillRecord{
		record("HR", "1", "First"),
		record("HR", "2", "Second"),
	}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(records, nil)
	s.expectTransactions(2)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil).Times(2)

	gomock.InOrder(
		s.bills.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down")),
		s.bills.EXPECT().Create(ctx, gomock.Any()).Return(nil),
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal(1, outcome.BillsCreated)
	s.Require().Len(outcome.Errors, 1)
	s.Equal("Error syncing bill HR 1: create bill: db down", outcome.Errors[0])
}

func (s *SyncServiceTestSuite) TestSync_FetchErrorSkipsStore() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(nil, errors.New("api down"))

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal([]string{"Error fetching bills from API: api down"}, outcome.Errors)
	s.Equal(0, outcome.Fetched)
	s.Equal(0, outcome.BillsCreated)
	s.Equal(0, outcome.BillsUpdated)
	s.Equal(0, outcome.SubjectsCreated)
	s.Equal(0, outcome.ActionsCreated)
	s.Equal(0, outcome.CosponsorsCreated)
}

func (s *SyncServiceTestSuite) TestSync_EmptyLatestActionKeepsStoredValue() {
	ctx := context.Background()

	stored := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	existing := &domain.Bill{
		ID: 9, Congress: 118, BillType: "hr", BillNumber: "5",
		LatestAction: "Old action", LatestActionDate: &stored,
	}

	rec := congress.BillRecord{Type: "hr", Number: "5", LatestAction: &congress.LatestAction{}}

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{rec}, nil)
	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, domain.BillKey{Congress: 118, Type: "hr", Number: "5"}).Return(existing, nil)
	s.bills.EXPECT().Update(ctx, existing).Return(nil)
	s.publisher.EXPECT().Publish(ctx, existing, false).Return(nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal("Old action", existing.LatestAction)
	s.Require().NotNil(existing.LatestActionDate)
	s.Equal(stored, *existing.LatestActionDate)
}

func (s *SyncServiceTestSuite) TestSync_PageSizeIsClamped() {
	ctx := context.Background()

	for _, size := range []int{1000, 0, -5} {
		cfg := s.cfg
		cfg.PageSize = size
		svc := s.newService(nil, nil, cfg)

		s.source.EXPECT().FetchRecentBills(ctx, 118, MaxPageSize, 0).Return([]congress.BillRecord{}, nil)
		s.expectSyncState()

		outcome := svc.SyncRecentBills(ctx, 118, 7)
		s.Empty(outcome.Errors)
	}

	cfg := s.cfg
	cfg.PageSize = 20
	s.source.EXPECT().FetchRecentBills(ctx, 118, 20, 0).Return([]congress.BillRecord{}, nil)
	s.expectSyncState()
	s.newService(nil, nil, cfg).SyncRecentBills(ctx, 118, 7)
}

func (s *SyncServiceTestSuite) TestSync_EmptyPage() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{}, nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal(0, outcome.Synced())
}

func (s *SyncServiceTestSuite) TestSync_PublishErrorIsRecorded() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{record("HR", "1", "First")}, nil)
	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil)
	s.expectCreate(1)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(errors.New("channel closed"))
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal(1, outcome.BillsCreated)
	s.Equal([]string{"Error publishing bill hr 1: channel closed"}, outcome.Errors)
}

func (s *SyncServiceTestSuite) TestSync_PublisherNil() {
	ctx := context.Background()
	service := s.newService(nil, nil, s.cfg)

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{record("HR", "1", "First")}, nil)
	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil)
	s.expectCreate(1)
	s.expectSyncState()

	outcome := service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal(1, outcome.BillsCreated)
}

func (s *SyncServiceTestSuite) TestSync_SyncStateErrorIsRecorded() {
	ctx := context.Background()

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{}, nil)
	s.syncState.EXPECT().Get(ctx, "congress-118").Return(nil, errors.New("no table"))

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal([]string{"Error recording sync state: no table"}, outcome.Errors)
}

func (s *SyncServiceTestSuite) TestSync_CancelledContextStopsLoop() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := []congress.BillRecord{record("HR", "1", "First"), record("HR", "2", "Second")}
	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(records, nil)
	s.expectSyncState()

	outcome := s.service.SyncRecentBills(ctx, 118, 7)

	s.Equal(2, outcome.Fetched)
	s.Equal(0, outcome.Synced())
	s.Require().Len(outcome.Errors, 1)
	s.Contains(outcome.Errors[0], "Sync interrupted after 0 of 2 bills")
}

func (s *SyncServiceTestSuite) TestSync_NotifiesObserver() {
	ctx := context.Background()
	observer := mocks.NewMockOutcomeObserver(s.ctrl)
	service := s.newService(nil, observer, s.cfg)

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return(nil, errors.New("api down"))
	observer.EXPECT().ObserveOutcome(gomock.Any()).Do(func(outcome *domain.SyncOutcome) {
		s.Len(outcome.Errors, 1)
		s.Equal(118, outcome.Congress)
	})

	service.SyncRecentBills(ctx, 118, 7)
}

func (s *SyncServiceTestSuite) TestSync_FetchDetails() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.FetchDetails = true
	service := s.newService(s.publisher, nil, cfg)

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{record("HR", "1234", "Tax bill")}, nil)

	s.source.EXPECT().FetchBillDetail(ctx, 118, "hr", "1234").Return(&congress.BillDetail{
		OriginChamber:  "House",
		IntroducedDate: "2023-01-09",
		PolicyArea:     &congress.PolicyArea{Name: "Taxation"},
		Sponsors: []congress.Member{
			{BioguideID: "A000001", FullName: "Rep. Doe", Party: "D", State: "CA"},
		},
	}, nil)
	s.source.EXPECT().FetchBillActions(ctx, 118, "hr", "1234").Return([]congress.ActionRecord{
		{ActionDate: "2023-01-09", Text: "Introduced in House", Type: "IntroReferral"},
		{ActionDate: "2023-05-01", Text: "Passed/agreed to in House: On passage Passed by recorded vote.", Type: "Floor",
			SourceSystem: &congress.SourceSystem{Name: "House floor actions"}},
		{ActionDate: "soon", Text: "Received in the Senate."},
	}, nil)
	s.source.EXPECT().FetchBillCosponsors(ctx, 118, "hr", "1234").Return([]congress.CosponsorRecord{
		{Member: congress.Member{BioguideID: "B000002", FullName: "Rep. Roe", Party: "R", State: "TX"}, SponsorshipDate: "2023-01-10"},
		{Member: congress.Member{FullName: "No Id"}},
	}, nil)
	s.source.EXPECT().FetchBillSubjects(ctx, 118, "hr", "1234").Return(&congress.SubjectsRecord{
		LegislativeSubjects: []congress.PolicyArea{{Name: "Income tax"}},
		PolicyArea:          &congress.PolicyArea{Name: "Taxation"},
	}, nil)

	s.expectTransactions(1)
	s.bills.EXPECT().GetByKey(ctx, gomock.Any()).Return(nil, nil)

	var created *domain.Bill
	s.bills.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, bill *domain.Bill) error {
			bill.ID = 100
			created = bill
			return nil
		},
	)
	s.subjects.EXPECT().UpsertBatch(ctx, int64(100), gomock.Len(2)).Return(2, nil)
	s.actions.EXPECT().InsertBatch(ctx, int64(100), gomock.Len(2)).Return(2, nil)
	s.cosponsors.EXPECT().UpsertBatch(ctx, int64(100), gomock.Len(1)).Return(1, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.expectSyncState()

	outcome := service.SyncRecentBills(ctx, 118, 7)

	s.Empty(outcome.Errors)
	s.Equal(1, outcome.BillsCreated)
	s.Equal(2, outcome.SubjectsCreated)
	s.Equal(2, outcome.ActionsCreated)
	s.Equal(1, outcome.CosponsorsCreated)

	s.Require().NotNil(created)
	s.Equal("Rep. Doe", created.SponsorName)
	s.Equal("A000001", created.SponsorBioguideID)
	s.Equal(domain.StatusPassedHouse, created.Status)
	s.Require().NotNil(created.HousePassageDate)
	s.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), *created.HousePassageDate)
	s.Require().NotNil(created.IntroducedDate)
	s.Nil(created.SenatePassageDate)
}

func (s *SyncServiceTestSuite) TestSync_FetchDetailsErrorIsIsolated() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.FetchDetails = true
	service := s.newService(nil, nil, cfg)

	s.source.EXPECT().FetchRecentBills(ctx, 118, 250, 0).Return([]congress.BillRecord{record("S", "9", "Senate bill")}, nil)
	s.source.EXPECT().FetchBillDetail(ctx, 118, "s", "9").Return(nil, errors.New("status 404"))
	s.expectSyncState()

	outcome := service.SyncRecentBills(ctx, 118, 7)

	s.Equal(0, outcome.Synced())
	s.Equal([]string{"Error syncing bill S 9: fetch details: bill: status 404"}, outcome.Errors)
}
