package match_test

import (
	"context"
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	matchRepo "github.com/cristiannav/swapstyle-backend/internal/repository/match"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db   *gorm.DB
	uc   match.IMatchUseCase
	sink *testutil.CaptureSink
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	sink := &testutil.CaptureSink{}
	uc := match.New(matchRepo.New(db), garmentRepo.New(db), sink)
	return &fixture{db: db, uc: uc, sink: sink}
}

// seedMatch creates a PENDING match between users 1 and 2 with one garment
// each, plus its conversation.
func (f *fixture) seedMatch(t *testing.T) *entity.Match {
	t.Helper()

	g1 := &entity.Garment{OwnerID: 1, Title: "Wool coat", Size: "M", Status: entity.GarmentActive}
	g2 := &entity.Garment{OwnerID: 2, Title: "Linen shirt", Size: "L", Status: entity.GarmentActive}
	require.NoError(t, f.db.Create(g1).Error)
	require.NoError(t, f.db.Create(g2).Error)

	m := &entity.Match{User1ID: 1, User2ID: 2, Garment1ID: g1.ID, Garment2ID: &g2.ID, Status: entity.MatchPending}
	require.NoError(t, f.db.Create(m).Error)
	require.NoError(t, f.db.Create(&entity.Conversation{MatchID: m.ID}).Error)
	return m
}

func (f *fixture) advance(t *testing.T, matchID uint, statuses ...entity.MatchStatus) {
	t.Helper()
	for _, s := range statuses {
		_, err := f.uc.UpdateStatus(context.Background(), matchID, 1, s)
		require.NoError(t, err)
	}
}

func TestGetByIDParticipantOnly(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	got, err := f.uc.GetByID(context.Background(), m.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = f.uc.GetByID(context.Background(), m.ID, 3)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	_, err = f.uc.GetByID(context.Background(), 999, 1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestUpdateStatusLegalPath(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	updated, err := f.uc.UpdateStatus(context.Background(), m.ID, 2, entity.MatchAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchAccepted, updated.Status)

	updated, err = f.uc.UpdateStatus(context.Background(), m.ID, 1, entity.MatchNegotiating)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchNegotiating, updated.Status)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	// PENDING cannot jump straight to COMPLETED
	_, err := f.uc.UpdateStatus(context.Background(), m.ID, 1, entity.MatchCompleted)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
	assert.Equal(t, "Cannot transition from PENDING to COMPLETED", apperror.Message(err))
}

func TestUpdateStatusNonParticipant(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	_, err := f.uc.UpdateStatus(context.Background(), m.ID, 7, entity.MatchAccepted)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestUpdateStatusTerminalIsFinal(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)
	f.advance(t, m.ID, entity.MatchAccepted, entity.MatchCancelled)

	_, err := f.uc.UpdateStatus(context.Background(), m.ID, 1, entity.MatchNegotiating)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestCompleteSwapSideEffects(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)
	f.advance(t, m.ID, entity.MatchAccepted, entity.MatchNegotiating)

	updated, err := f.uc.UpdateStatus(context.Background(), m.ID, 1, entity.MatchCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchCompleted, updated.Status)

	var garments []entity.Garment
	require.NoError(t, f.db.Order("id").Find(&garments).Error)
	require.Len(t, garments, 2)
	assert.Equal(t, entity.GarmentSwapped, garments[0].Status)
	assert.Equal(t, entity.GarmentSwapped, garments[1].Status)

	// only the counterpart is notified
	notices := f.sink.ByType(entity.NotificationSwapCompleted)
	require.Len(t, notices, 1)
	assert.Equal(t, uint(2), notices[0].UserID)
}

func TestProposeGarment(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	replacement := &entity.Garment{OwnerID: 2, Title: "Suede boots", Size: "42", Status: entity.GarmentActive}
	require.NoError(t, f.db.Create(replacement).Error)

	updated, err := f.uc.ProposeGarment(context.Background(), m.ID, 2, replacement.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Garment2ID)
	assert.Equal(t, replacement.ID, *updated.Garment2ID)

	// user2's proposal never touches user1's slot
	var stored entity.Match
	require.NoError(t, f.db.First(&stored, m.ID).Error)
	assert.Equal(t, m.Garment1ID, stored.Garment1ID)
	require.NotNil(t, stored.Garment2ID)
	assert.Equal(t, replacement.ID, *stored.Garment2ID)
}

func TestProposeGarmentNotOwned(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	foreign := &entity.Garment{OwnerID: 9, Title: "Silk scarf", Size: "S", Status: entity.GarmentActive}
	require.NoError(t, f.db.Create(foreign).Error)

	_, err := f.uc.ProposeGarment(context.Background(), m.ID, 2, foreign.ID)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	_, err = f.uc.ProposeGarment(context.Background(), m.ID, 2, 999)
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))

	_, err = f.uc.ProposeGarment(context.Background(), m.ID, 7, foreign.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestListExcludesTerminalAndStats(t *testing.T) {
	f := setup(t)
	m := f.seedMatch(t)

	page, err := f.uc.List(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	f.advance(t, m.ID, entity.MatchCancelled)

	page, err = f.uc.List(context.Background(), 1, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 0)

	stats, err := f.uc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalMatches)
	assert.Equal(t, int64(0), stats.CompletedSwaps)
}
