package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.skilldock.io/skilldock/internal/adapters/registry"
	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMemo_ListReleasesCachedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockReleaseRepository(ctrl)
	ref := mustRef(t, "acme/app")

	inner.EXPECT().ListReleases(gomock.Any(), ref).
		Return([]domain.Release{{Ref: ref, Version: "1.0.0"}}, nil).
		Times(1)

	memo := registry.NewMemo(inner)
	first, err := memo.ListReleases(context.Background(), ref)
	require.NoError(t, err)
	second, err := memo.ListReleases(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMemo_ListReleasesReturnsCopies(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockReleaseRepository(ctrl)
	ref := mustRef(t, "acme/app")

	inner.EXPECT().ListReleases(gomock.Any(), ref).
		Return([]domain.Release{
			{Ref: ref, Version: "1.0.0"},
			{Ref: ref, Version: "2.0.0"},
		}, nil).
		Times(1)

	memo := registry.NewMemo(inner)
	first, err := memo.ListReleases(context.Background(), ref)
	require.NoError(t, err)

	// Callers reorder the slice they get; the cache must not see that.
	first[0], first[1] = first[1], first[0]

	second, err := memo.ListReleases(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", second[0].Version)
}

func TestMemo_GetReleaseCachesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockReleaseRepository(ctrl)
	ref := mustRef(t, "acme/app")

	inner.EXPECT().GetRelease(gomock.Any(), ref, "9.9.9").
		Return(domain.Release{}, false, nil).
		Times(1)

	memo := registry.NewMemo(inner)
	for range 2 {
		_, found, err := memo.GetRelease(context.Background(), ref, "9.9.9")
		require.NoError(t, err)
		assert.False(t, found)
	}
}

func TestMemo_CachesErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockReleaseRepository(ctrl)
	ref := mustRef(t, "ghost/skill")

	inner.EXPECT().ListReleases(gomock.Any(), ref).
		Return(nil, &domain.NotFoundError{Key: "ghost/skill"}).
		Times(1)

	memo := registry.NewMemo(inner)
	for range 2 {
		_, err := memo.ListReleases(context.Background(), ref)
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
	}
}

func TestMemo_DownloadArchivePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockReleaseRepository(ctrl)
	ref := mustRef(t, "acme/app")
	rel := domain.Release{Ref: ref, Version: "1.0.0", DownloadLocator: "u"}

	inner.EXPECT().DownloadArchive(gomock.Any(), rel).
		Return([]byte("zip"), nil).
		Times(2)

	memo := registry.NewMemo(inner)
	for range 2 {
		data, err := memo.DownloadArchive(context.Background(), rel)
		require.NoError(t, err)
		assert.Equal(t, []byte("zip"), data)
	}
}
