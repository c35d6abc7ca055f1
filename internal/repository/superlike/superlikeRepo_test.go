package superlikeRepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/cristiannav/swapstyle-backend/internal/entity"
	superlikeRepo "github.com/cristiannav/swapstyle-backend/internal/repository/superlike"
	"github.com/cristiannav/swapstyle-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayCountCacheAndFallback(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, mr := testutil.OpenRedis(t)
	repo := superlikeRepo.New(db, rdb)
	ctx := context.Background()

	count, err := repo.TodayCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, &entity.SuperLike{
			GiverID: 1, ReceiverID: 2, GarmentID: uint(100 + i),
		})
		require.NoError(t, err)
	}

	count, err = repo.TodayCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// drop the cache; the database count is the authority
	mr.FlushAll()
	count, err = repo.TodayCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// other givers are counted separately
	count, err = repo.TodayCount(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateStampsCacheExpiry(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, mr := testutil.OpenRedis(t)
	repo := superlikeRepo.New(db, rdb)
	ctx := context.Background()

	// the bump creates the key; it must expire at midnight, not live forever
	_, err := repo.Create(ctx, &entity.SuperLike{GiverID: 1, ReceiverID: 2, GarmentID: 10})
	require.NoError(t, err)

	countKey := "superlikes:" + time.Now().Format("2006-01-02") + ":user:1"
	assert.Greater(t, mr.TTL(countKey), time.Duration(0))
	assert.LessOrEqual(t, mr.TTL(countKey), 24*time.Hour)
}

func TestCreateUniquePerGiverGarment(t *testing.T) {
	db := testutil.OpenDB(t)
	rdb, _ := testutil.OpenRedis(t)
	repo := superlikeRepo.New(db, rdb)
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.SuperLike{GiverID: 1, ReceiverID: 2, GarmentID: 10})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.SuperLike{GiverID: 1, ReceiverID: 2, GarmentID: 10})
	assert.Error(t, err)

	// same garment, different giver is fine
	_, err = repo.Create(ctx, &entity.SuperLike{GiverID: 3, ReceiverID: 2, GarmentID: 10})
	assert.NoError(t, err)
}
