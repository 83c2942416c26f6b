package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bungee-astro/tracker-api/internal/apperror"
	"github.com/bungee-astro/tracker-api/internal/notify"
	"github.com/bungee-astro/tracker-api/internal/ticket/model"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, ticket *model.BugTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *mockRepository) GetByID(ctx context.Context, id uint) (*model.BugTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BugTicket), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, filter model.ListTicketsFilter) ([]model.BugTicket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BugTicket), args.Error(1)
}

func (m *mockRepository) Save(ctx context.Context, ticket *model.BugTicket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *mockRepository) Archive(ctx context.Context, id uint) (*model.BugTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BugTicket), args.Error(1)
}

func (m *mockRepository) HardDelete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRepository) SetMessageID(ctx context.Context, id uint, messageID string) error {
	args := m.Called(ctx, id, messageID)
	return args.Error(0)
}

// fakeNotifier records dispatch calls without any network activity.
type fakeNotifier struct {
	createdMessageID string

	created  int
	updated  int
	resolved int

	lastMessageID string
}

func (f *fakeNotifier) NotifyCreated(_ context.Context, _ string, _ notify.Embed) string {
	f.created++
	return f.createdMessageID
}

func (f *fakeNotifier) NotifyUpdated(_ context.Context, _ string, messageID string, _ notify.Embed) {
	f.updated++
	f.lastMessageID = messageID
}

func (f *fakeNotifier) NotifyResolved(_ context.Context, _ string, messageID string, _ notify.Embed) {
	f.resolved++
	f.lastMessageID = messageID
}

const longText = "The cooldown tracker stops updating after the second boss pull in any raid instance until reload."

func createRequest() *model.CreateTicketRequest {
	return &model.CreateTicketRequest{
		Developer:        "astro",
		Class:            "warrior",
		CurrentBehavior:  longText,
		ExpectedBehavior: longText,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{createdMessageID: "msg-123"}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.BugTicket")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.BugTicket).ID = 7
		}).Return(nil)
	repo.On("SetMessageID", mock.Anything, uint(7), "msg-123").Return(nil)

	resp, err := svc.Create(context.Background(), createRequest(), nil)
	require.NoError(t, err)
	require.Equal(t, "ticket created", resp.Message)
	require.Equal(t, model.StatusOpen, resp.Ticket.Status)
	require.Equal(t, model.PriorityMedium, resp.Ticket.Priority)
	require.Equal(t, 1, notifier.created)

	repo.AssertExpectations(t)
}

func TestCreate_BehaviorTooShort(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, &fakeNotifier{}, zap.NewNop().Sugar())

	req := createRequest()
	req.CurrentBehavior = "too short"

	_, err := svc.Create(context.Background(), req, nil)
	require.ErrorIs(t, err, apperror.ErrValidation)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidPriority(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, &fakeNotifier{}, zap.NewNop().Sugar())

	req := createRequest()
	req.Priority = "urgent"

	_, err := svc.Create(context.Background(), req, nil)
	require.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreate_NotificationFailureDoesNotFail(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{createdMessageID: ""}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), createRequest(), nil)
	require.NoError(t, err)
	require.Empty(t, resp.Ticket.DiscordMessageID)
	repo.AssertNotCalled(t, "SetMessageID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_PartialPatch(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	existing := &model.BugTicket{
		ID: 3, Developer: "astro", Class: "warrior",
		CurrentBehavior: longText, ExpectedBehavior: longText,
		Priority: model.PriorityMedium, Status: model.StatusOpen,
		DiscordMessageID: "msg-3",
	}
	repo.On("GetByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	priority := model.PriorityHigh
	resp, err := svc.Update(context.Background(), 3, &model.UpdateTicketRequest{Priority: &priority})
	require.NoError(t, err)
	require.Equal(t, model.PriorityHigh, resp.Ticket.Priority)
	require.Equal(t, "warrior", resp.Ticket.Class)
	require.Equal(t, model.StatusOpen, resp.Ticket.Status)
	require.Equal(t, 1, notifier.updated)
	require.Equal(t, "msg-3", notifier.lastMessageID)
	require.Equal(t, 0, notifier.resolved)
}

func TestUpdate_ResolveArchivesAndMovesMirror(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	existing := &model.BugTicket{
		ID: 3, Developer: "astro",
		CurrentBehavior: longText, ExpectedBehavior: longText,
		Priority: model.PriorityMedium, Status: model.StatusInProgress,
		DiscordMessageID: "msg-3",
	}
	repo.On("GetByID", mock.Anything, uint(3)).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(tk *model.BugTicket) bool {
		return tk.Status == model.StatusResolved && tk.IsArchived && tk.DiscordMessageID == ""
	})).Return(nil)

	status := model.StatusResolved
	reason := "fixed in 2.4.1"
	resp, err := svc.Update(context.Background(), 3, &model.UpdateTicketRequest{
		Status:        &status,
		ResolveReason: &reason,
	})
	require.NoError(t, err)
	require.True(t, resp.Ticket.IsArchived)
	require.Equal(t, "fixed in 2.4.1", resp.Ticket.ResolveReason)
	require.Equal(t, 1, notifier.resolved)
	require.Equal(t, "msg-3", notifier.lastMessageID)
	require.Equal(t, 0, notifier.updated)

	repo.AssertExpectations(t)
}

func TestUpdate_ReopenClearsArchiveFlag(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	existing := &model.BugTicket{
		ID: 4, Developer: "astro",
		CurrentBehavior: longText, ExpectedBehavior: longText,
		Priority: model.PriorityMedium, Status: model.StatusResolved, IsArchived: true,
	}
	repo.On("GetByID", mock.Anything, uint(4)).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	status := model.StatusOpen
	resp, err := svc.Update(context.Background(), 4, &model.UpdateTicketRequest{Status: &status})
	require.NoError(t, err)
	require.False(t, resp.Ticket.IsArchived)
	require.Equal(t, 1, notifier.updated)
	require.Equal(t, 0, notifier.resolved)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, &fakeNotifier{}, zap.NewNop().Sugar())

	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, model.ErrTicketNotFound)

	status := model.StatusOpen
	_, err := svc.Update(context.Background(), 99, &model.UpdateTicketRequest{Status: &status})
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestArchive_NotifiesOnce(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	live := &model.BugTicket{ID: 5, Developer: "bungee", Status: model.StatusOpen, DiscordMessageID: "msg-5"}
	archived := &model.BugTicket{ID: 5, Developer: "bungee", Status: model.StatusResolved, IsArchived: true, DiscordMessageID: "msg-5"}

	repo.On("GetByID", mock.Anything, uint(5)).Return(live, nil)
	repo.On("Archive", mock.Anything, uint(5)).Return(archived, nil)
	repo.On("SetMessageID", mock.Anything, uint(5), "").Return(nil)

	resp, err := svc.Archive(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, "ticket archived", resp.Message)
	require.Equal(t, 1, notifier.resolved)
	require.Equal(t, "msg-5", notifier.lastMessageID)
}

func TestArchive_AlreadyArchivedIsIdempotent(t *testing.T) {
	repo := new(mockRepository)
	notifier := &fakeNotifier{}
	svc := New(repo, notifier, zap.NewNop().Sugar())

	archived := &model.BugTicket{ID: 5, Developer: "bungee", Status: model.StatusResolved, IsArchived: true}
	repo.On("GetByID", mock.Anything, uint(5)).Return(archived, nil)
	repo.On("Archive", mock.Anything, uint(5)).Return(archived, nil)

	_, err := svc.Archive(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 0, notifier.resolved)
}

func TestHardDelete_NotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, &fakeNotifier{}, zap.NewNop().Sugar())

	repo.On("HardDelete", mock.Anything, uint(42)).Return(model.ErrTicketNotFound)

	err := svc.HardDelete(context.Background(), 42)
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestList_EmptyIsNotNil(t *testing.T) {
	repo := new(mockRepository)
	svc := New(repo, &fakeNotifier{}, zap.NewNop().Sugar())

	repo.On("List", mock.Anything, model.ListTicketsFilter{}).Return([]model.BugTicket{}, nil)

	resp, err := svc.List(context.Background(), model.ListTicketsFilter{})
	require.NoError(t, err)
	require.NotNil(t, resp.Tickets)
	require.Zero(t, resp.Total)
}
