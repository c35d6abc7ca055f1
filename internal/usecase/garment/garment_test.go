package garment_test

import (
	"context"
	"testing"

	"github.com/cristiannav/swapstyle-backend/internal/apperror"
	"github.com/cristiannav/swapstyle-backend/internal/entity"
	garmentRepo "github.com/cristiannav/swapstyle-backend/internal/repository/garment"
	swipeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/swipe"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/cristiannav/swapstyle-backend/internal/usecase/garment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db *gorm.DB
	uc garment.IGarmentUseCase
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)
	return &fixture{db: db, uc: garment.New(garmentRepo.New(db))}
}

func (f *fixture) create(t *testing.T, ownerID uint, title string) *entity.Garment {
	t.Helper()
	g, err := f.uc.Create(context.Background(), ownerID, &entity.CreateGarmentRequest{
		Title: title, Category: "jackets", Size: "M", Condition: "good",
	})
	require.NoError(t, err)
	return g
}

func TestCreateAndGet(t *testing.T) {
	f := setup(t)
	created := f.create(t, 1, "Denim jacket")
	assert.Equal(t, entity.GarmentActive, created.Status)

	got, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Denim jacket", got.Title)

	// reads bump the view counter
	again, err := f.uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, again.ID, created.ID)

	var stored entity.Garment
	require.NoError(t, f.db.First(&stored, created.ID).Error)
	assert.Equal(t, 2, stored.ViewCount)
}

func TestUpdateOwnerOnly(t *testing.T) {
	f := setup(t)
	g := f.create(t, 1, "Denim jacket")

	newTitle := "Vintage denim jacket"
	updated, err := f.uc.Update(context.Background(), 1, g.ID, &entity.UpdateGarmentRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	_, err = f.uc.Update(context.Background(), 2, g.ID, &entity.UpdateGarmentRequest{Title: &newTitle})
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestUpdateStatusRestricted(t *testing.T) {
	f := setup(t)
	g := f.create(t, 1, "Denim jacket")

	inactive := string(entity.GarmentInactive)
	updated, err := f.uc.Update(context.Background(), 1, g.ID, &entity.UpdateGarmentRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, entity.GarmentInactive, updated.Status)

	// SWAPPED only happens through swap completion
	swapped := string(entity.GarmentSwapped)
	_, err = f.uc.Update(context.Background(), 1, g.ID, &entity.UpdateGarmentRequest{Status: &swapped})
	assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
}

func TestDeleteIsSoft(t *testing.T) {
	f := setup(t)
	g := f.create(t, 1, "Denim jacket")

	_, err := f.uc.GetByID(context.Background(), g.ID)
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), 2, g.ID)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))

	require.NoError(t, f.uc.Delete(context.Background(), 1, g.ID))

	// the row survives but reads as gone
	_, err = f.uc.GetByID(context.Background(), g.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	var stored entity.Garment
	require.NoError(t, f.db.First(&stored, g.ID).Error)
	assert.Equal(t, entity.GarmentDeleted, stored.Status)
}

func TestSearchFilters(t *testing.T) {
	f := setup(t)
	f.create(t, 1, "Denim jacket")
	f.create(t, 2, "Denim jacket 2")

	other, err := f.uc.Create(context.Background(), 2, &entity.CreateGarmentRequest{
		Title: "Linen shirt", Category: "shirts", Size: "L",
	})
	require.NoError(t, err)

	page, err := f.uc.Search(context.Background(), entity.GarmentFilters{Category: "jackets"}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(2), page.Meta.Total)

	page, err = f.uc.Search(context.Background(), entity.GarmentFilters{Category: "shirts"}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, other.ID, page.Items[0].ID)
}

func TestFeedExcludesOwnAndSwiped(t *testing.T) {
	f := setup(t)
	own := f.create(t, 1, "My jacket")
	seen := f.create(t, 2, "Seen jacket")
	fresh := f.create(t, 3, "Fresh jacket")

	swipes := swipeRepo.New(f.db)
	_, err := swipes.Create(context.Background(), &entity.Swipe{
		SwiperID: 1, SwipedID: 2, GarmentID: seen.ID, Direction: entity.SwipeLeft,
	})
	require.NoError(t, err)

	feed, err := f.uc.Feed(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, fresh.ID, feed[0].ID)
	assert.NotEqual(t, own.ID, feed[0].ID)
}
