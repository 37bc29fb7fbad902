package viewmodel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/formfighter/ringside/internal/identity"
	"github.com/formfighter/ringside/internal/models"
	"github.com/formfighter/ringside/internal/notify"
	"github.com/formfighter/ringside/internal/services/challenge"
	challengeMocks "github.com/formfighter/ringside/internal/services/challenge/mocks"
)

type ViewModelTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockSvc  *challengeMocks.MockService
	provider *identity.StaticProvider
	snapCh   chan challenge.Snapshot
	vm       *ViewModel
	ctx      context.Context

	// Test data
	testUserID      string
	testUserName    string
	testChallengeID string
}

func (s *ViewModelTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = challengeMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	s.testUserID = "test-user-id"
	s.testUserName = "Test User"
	s.testChallengeID = "abc123"

	s.provider = identity.NewStaticProvider(&identity.User{
		ID:   s.testUserID,
		Name: s.testUserName,
	})

	s.snapCh = make(chan challenge.Snapshot, 1)
}

func (s *ViewModelTestSuite) TearDownTest() {
	if s.vm != nil {
		s.vm.Close()
		s.vm = nil
	}
	s.mockCtrl.Finish()
}

func TestViewModelTestSuite(t *testing.T) {
	suite.Run(t, new(ViewModelTestSuite))
}

// newViewModel wires a view-model against the mock service. The mock
// returns a plain bidirectional channel, so it has to be converted to
// the receive-only type the interface declares.
func (s *ViewModelTestSuite) newViewModel(cfg Config) {
	var snapshots <-chan challenge.Snapshot = s.snapCh
	s.mockSvc.EXPECT().Subscribe(s.testUserID).Return(snapshots, func() {})

	cfg.ChallengeService = s.mockSvc
	if cfg.Identity == nil {
		cfg.Identity = s.provider
	}

	vm, err := New(&cfg)
	s.Require().NoError(err)
	s.vm = vm
}

// pushSnapshot delivers a snapshot and waits until the state mirrors it
func (s *ViewModelTestSuite) pushSnapshot(snap challenge.Snapshot) {
	s.snapCh <- snap
	s.Require().Eventually(func() bool {
		st := s.vm.State()
		if snap.ActiveChallenge == nil {
			return st.ActiveChallenge == nil
		}
		return st.ActiveChallenge != nil && st.ActiveChallenge.ID == snap.ActiveChallenge.ID
	}, 2*time.Second, 5*time.Millisecond)
}

// makeEvents builds n feed events newest first, one minute apart
func (s *ViewModelTestSuite) makeEvents(n int, newest time.Time) []*models.ChallengeEvent {
	events := make([]*models.ChallengeEvent, n)
	for i := range events {
		events[i] = &models.ChallengeEvent{
			ID:          "event-id",
			ChallengeID: s.testChallengeID,
			Type:        models.EventTypeScore,
			Timestamp:   newest.Add(-time.Duration(i) * time.Minute),
		}
	}
	return events
}

func (s *ViewModelTestSuite) activeChallenge(events []*models.ChallengeEvent) *models.Challenge {
	return &models.Challenge{
		ID:           s.testChallengeID,
		Name:         "Friday Night Jabs",
		CreatorID:    s.testUserID,
		Status:       models.ChallengeStatusActive,
		RecentEvents: events,
	}
}

func (s *ViewModelTestSuite) TestSnapshotReplacesState() {
	s.newViewModel(Config{})

	s.pushSnapshot(challenge.Snapshot{
		ActiveChallenge: s.activeChallenge(nil),
		CompletedChallenges: []*models.Challenge{
			{ID: "old-challenge-id", Status: models.ChallengeStatusCompleted},
		},
	})

	st := s.vm.State()
	s.Equal(s.testChallengeID, st.ActiveChallenge.ID)
	s.Len(st.CompletedChallenges, 1)
	s.True(st.HasMoreEvents)

	// An absent active challenge is a valid state, not a stale push
	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: nil})

	st = s.vm.State()
	s.Nil(st.ActiveChallenge)
	s.False(st.HasMoreEvents)
}

func (s *ViewModelTestSuite) TestCreateChallengeSuccess() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		CreateChallenge(s.ctx, &challenge.CreateChallengeInput{
			CreatorID:   s.testUserID,
			CreatorName: s.testUserName,
			Name:        "Friday Night Jabs",
			Description: "Most jabs wins",
		}).
		Return(&challenge.CreateChallengeOutput{Challenge: s.activeChallenge(nil)}, nil)

	err := s.vm.CreateChallenge(s.ctx, "Friday Night Jabs", "Most jabs wins")
	s.Require().NoError(err)

	st := s.vm.State()
	s.False(st.IsLoading)
	s.True(st.Toast.Visible)
	s.Equal("Challenge created!", st.Toast.Message)
}

func (s *ViewModelTestSuite) TestCreateChallengeFailureIsPublishedAndReturned() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		CreateChallenge(s.ctx, gomock.Any()).
		Return(nil, challenge.ErrAlreadyInChallenge)

	err := s.vm.CreateChallenge(s.ctx, "Second Challenge", "")
	s.Require().Error(err)
	s.Equal(challenge.ErrAlreadyInChallenge, err)

	st := s.vm.State()
	s.Equal(challenge.ErrAlreadyInChallenge, st.Err)
	s.False(st.IsLoading)
	s.False(st.Toast.Visible)
}

func (s *ViewModelTestSuite) TestCreateChallengeBlockedWhileOneIsActive() {
	s.newViewModel(Config{})

	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: s.activeChallenge(nil)})

	// No CreateChallenge expectation: the service is never contacted

	err := s.vm.CreateChallenge(s.ctx, "Second Challenge", "")
	s.Require().Error(err)
	s.Equal(challenge.ErrAlreadyInChallenge, err)
}

func (s *ViewModelTestSuite) TestProcessInviteSuccess() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		HandleInvite(s.ctx, &challenge.HandleInviteInput{
			ChallengeID: s.testChallengeID,
			UserID:      s.testUserID,
			UserName:    s.testUserName,
			ReferrerID:  "referrer-id",
		}).
		Return(&challenge.HandleInviteOutput{Challenge: s.activeChallenge(nil)}, nil)

	err := s.vm.ProcessInvite(s.ctx, s.testChallengeID, "referrer-id")
	s.Require().NoError(err)

	st := s.vm.State()
	s.True(st.Toast.Visible)
	s.Equal("You're in! Good luck.", st.Toast.Message)
}

func (s *ViewModelTestSuite) TestProcessInviteFailureClearsPendingInvite() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		HandleInvite(s.ctx, gomock.Any()).
		Return(nil, challenge.ErrInvalidChallenge)

	s.mockSvc.EXPECT().ClearPendingChallenge().Times(1)

	err := s.vm.ProcessInvite(s.ctx, s.testChallengeID, "")
	s.Require().Error(err)
	s.Equal(challenge.ErrInvalidChallenge, err)

	st := s.vm.State()
	s.Equal(challenge.ErrInvalidChallenge, st.Err)
	s.False(st.IsLoading)
}

func (s *ViewModelTestSuite) TestProcessInviteWithoutIdentityClearsPendingInvite() {
	s.newViewModel(Config{})

	s.provider.SetUser(nil)

	s.mockSvc.EXPECT().ClearPendingChallenge().Times(1)

	err := s.vm.ProcessInvite(s.ctx, s.testChallengeID, "")
	s.Require().Error(err)
	s.Equal(challenge.ErrInvalidChallenge, err)
}

func (s *ViewModelTestSuite) TestShareChallengeBuildsDeepLink() {
	s.newViewModel(Config{})

	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: s.activeChallenge(nil)})

	link, ok := s.vm.ShareChallenge()
	s.Require().True(ok)
	s.Equal("formfighter://challenge/abc123", link)
}

func (s *ViewModelTestSuite) TestShareChallengeWithoutActiveChallenge() {
	s.newViewModel(Config{})

	_, ok := s.vm.ShareChallenge()
	s.False(ok)
}

func (s *ViewModelTestSuite) TestLoadMoreEventsAppendsOlderPage() {
	s.newViewModel(Config{})

	newest := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)
	held := s.makeEvents(15, newest)
	cursor := held[len(held)-1].Timestamp

	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: s.activeChallenge(held)})

	older := s.makeEvents(3, cursor.Add(-time.Minute))
	s.mockSvc.EXPECT().
		LoadMoreEvents(s.ctx, &challenge.LoadMoreEventsInput{
			ChallengeID: s.testChallengeID,
			Before:      cursor,
		}).
		Return(&challenge.LoadMoreEventsOutput{Events: older, HasMore: false}, nil)

	s.vm.LoadMoreEvents(s.ctx)

	st := s.vm.State()
	s.Require().Len(st.ActiveChallenge.RecentEvents, 18)
	// The held prefix is untouched and the page lands after it
	s.Equal(newest, st.ActiveChallenge.RecentEvents[0].Timestamp)
	s.Equal(older[0].Timestamp, st.ActiveChallenge.RecentEvents[15].Timestamp)
	s.False(st.HasMoreEvents)
	s.False(st.IsLoadingMoreEvents)

	// Exhausted feed: no further service calls are expected
	s.vm.LoadMoreEvents(s.ctx)
}

func (s *ViewModelTestSuite) TestLoadMoreEventsFailureStopsPagination() {
	s.newViewModel(Config{})

	newest := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)
	held := s.makeEvents(15, newest)

	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: s.activeChallenge(held)})

	s.mockSvc.EXPECT().
		LoadMoreEvents(s.ctx, gomock.Any()).
		Return(nil, challenge.ErrInvalidChallenge)

	s.vm.LoadMoreEvents(s.ctx)

	st := s.vm.State()
	s.Len(st.ActiveChallenge.RecentEvents, 15)
	s.False(st.HasMoreEvents)
	s.False(st.IsLoadingMoreEvents)
	// The failure is absorbed, not surfaced
	s.Nil(st.Err)

	s.vm.LoadMoreEvents(s.ctx)
}

func (s *ViewModelTestSuite) TestLoadMoreEventsStalePageIsDroppedEntirely() {
	s.newViewModel(Config{})

	newest := time.Date(2025, 8, 10, 18, 0, 0, 0, time.UTC)
	held := s.makeEvents(15, newest)

	s.pushSnapshot(challenge.Snapshot{ActiveChallenge: s.activeChallenge(held)})

	replacement := &models.Challenge{
		ID:           "replacement-challenge-id",
		Status:       models.ChallengeStatusActive,
		RecentEvents: s.makeEvents(2, newest.Add(time.Hour)),
	}

	// A snapshot push replaces the active challenge while the page is in
	// flight; both the page and its exhaustion signal are stale
	s.mockSvc.EXPECT().
		LoadMoreEvents(s.ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *challenge.LoadMoreEventsInput) (*challenge.LoadMoreEventsOutput, error) {
			s.pushSnapshot(challenge.Snapshot{ActiveChallenge: replacement})
			return &challenge.LoadMoreEventsOutput{
				Events:  s.makeEvents(3, newest.Add(-16*time.Minute)),
				HasMore: false,
			}, nil
		})

	s.vm.LoadMoreEvents(s.ctx)

	st := s.vm.State()
	s.Equal("replacement-challenge-id", st.ActiveChallenge.ID)
	s.Len(st.ActiveChallenge.RecentEvents, 2)
	// The old challenge's exhaustion must not carry over
	s.True(st.HasMoreEvents)
	s.False(st.IsLoadingMoreEvents)
}

func (s *ViewModelTestSuite) TestRefreshChallengeStartsListening() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		StartListening(s.ctx, &challenge.StartListeningInput{UserID: s.testUserID}).
		Return(nil)

	err := s.vm.RefreshChallenge(s.ctx)
	s.Require().NoError(err)
}

func (s *ViewModelTestSuite) TestOpenChallengeNotificationTriggersRefresh() {
	bus := notify.NewBus()
	s.newViewModel(Config{Bus: bus})

	started := make(chan struct{})
	s.mockSvc.EXPECT().
		StartListening(gomock.Any(), &challenge.StartListeningInput{UserID: s.testUserID}).
		DoAndReturn(func(context.Context, *challenge.StartListeningInput) error {
			close(started)
			return nil
		})

	bus.Publish(notify.Notification{
		Name:        notify.NameOpenChallenge,
		ChallengeID: s.testChallengeID,
	})

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		s.FailNow("expected notification to trigger a refresh")
	}
}

func (s *ViewModelTestSuite) TestHandleDeepLinkWithSignedInUser() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().
		SetPendingChallenge(&challenge.SetPendingChallengeInput{
			ChallengeID: s.testChallengeID,
			ReferrerID:  "referrer-id",
		})

	s.mockSvc.EXPECT().
		PendingChallenge().
		Return(&challenge.PendingChallenge{
			ChallengeID: s.testChallengeID,
			ReferrerID:  "referrer-id",
		}, true)

	s.mockSvc.EXPECT().
		HandleInvite(s.ctx, &challenge.HandleInviteInput{
			ChallengeID: s.testChallengeID,
			UserID:      s.testUserID,
			UserName:    s.testUserName,
			ReferrerID:  "referrer-id",
		}).
		Return(&challenge.HandleInviteOutput{Challenge: s.activeChallenge(nil)}, nil)

	s.mockSvc.EXPECT().ClearPendingChallenge().Times(1)

	err := s.vm.HandleDeepLink(s.ctx, "formfighter://challenge/abc123?ref=referrer-id")
	s.Require().NoError(err)

	s.True(s.vm.State().Toast.Visible)
}

func (s *ViewModelTestSuite) TestHandleDeepLinkWithoutUserOnlyStages() {
	s.newViewModel(Config{})

	s.provider.SetUser(nil)

	// Staged for later; no invite processing until sign-in
	s.mockSvc.EXPECT().
		SetPendingChallenge(&challenge.SetPendingChallengeInput{
			ChallengeID: s.testChallengeID,
		})

	err := s.vm.HandleDeepLink(s.ctx, "formfighter://challenge/abc123")
	s.Require().NoError(err)
}

func (s *ViewModelTestSuite) TestHandleDeepLinkRejectsForeignLink() {
	s.newViewModel(Config{})

	err := s.vm.HandleDeepLink(s.ctx, "https://example.com/challenge/abc123")
	s.Require().Error(err)
}

func (s *ViewModelTestSuite) TestProcessPendingInviteWithNothingStaged() {
	s.newViewModel(Config{})

	s.mockSvc.EXPECT().PendingChallenge().Return(nil, false)

	err := s.vm.ProcessPendingInvite(s.ctx)
	s.Require().NoError(err)
}

func (s *ViewModelTestSuite) TestToastAutoHides() {
	s.newViewModel(Config{ToastDuration: 50 * time.Millisecond})

	s.mockSvc.EXPECT().
		CreateChallenge(s.ctx, gomock.Any()).
		Return(&challenge.CreateChallengeOutput{Challenge: s.activeChallenge(nil)}, nil)

	s.Require().NoError(s.vm.CreateChallenge(s.ctx, "Friday Night Jabs", ""))
	s.True(s.vm.State().Toast.Visible)

	s.Require().Eventually(func() bool {
		return !s.vm.State().Toast.Visible
	}, 2*time.Second, 5*time.Millisecond)
}

func (s *ViewModelTestSuite) TestNewerToastSurvivesOlderHideTimer() {
	s.newViewModel(Config{ToastDuration: 400 * time.Millisecond})

	s.mockSvc.EXPECT().
		CreateChallenge(s.ctx, gomock.Any()).
		Return(&challenge.CreateChallengeOutput{Challenge: s.activeChallenge(nil)}, nil)
	s.mockSvc.EXPECT().
		HandleInvite(s.ctx, gomock.Any()).
		Return(&challenge.HandleInviteOutput{Challenge: s.activeChallenge(nil)}, nil)

	s.Require().NoError(s.vm.CreateChallenge(s.ctx, "Friday Night Jabs", ""))

	time.Sleep(200 * time.Millisecond)
	s.Require().NoError(s.vm.ProcessInvite(s.ctx, s.testChallengeID, ""))

	// Past the first toast's hide point but before the second's
	time.Sleep(300 * time.Millisecond)
	st := s.vm.State()
	s.True(st.Toast.Visible)
	s.Equal("You're in! Good luck.", st.Toast.Message)

	s.Require().Eventually(func() bool {
		return !s.vm.State().Toast.Visible
	}, 2*time.Second, 5*time.Millisecond)
}
