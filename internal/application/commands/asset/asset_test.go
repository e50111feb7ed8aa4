package asset_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/pagesmith/pagesmith-backend/internal/application/commands/asset"
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/website"
	"github.com/pagesmith/pagesmith-backend/internal/application/dto"
	"github.com/pagesmith/pagesmith-backend/internal/application/errs"
	"github.com/pagesmith/pagesmith-backend/internal/application/query"
	"github.com/pagesmith/pagesmith-backend/internal/testinfra"
	dbs "github.com/pagesmith/pagesmith-backend/pkg/db"
	"github.com/stretchr/testify/require"
)

var uowFactory *dbs.UOWFactory

func TestMain(m *testing.M) {
	ctx := context.Background()

	uowFactory = dbs.NewUoWFactory(testinfra.Pool)
	code := m.Run()

	cleanup(ctx)

	os.Exit(code)
}

func assetRequest(websiteID int64) *dto.CreateAssetRequest {
	return &dto.CreateAssetRequest{
		WebsiteID:    websiteID,
		Filename:     "b2f3.png",
		OriginalName: "banner.png",
		MimeType:     "image/png",
		FileSize:     2048,
		URL:          "https://cdn.example.com/b2f3.png",
	}
}

func TestCreateAssetFailsWhenWebsiteMissing(t *testing.T) {
	ctx := context.Background()
	_, err := asset.NewCreateAsset(uowFactory).Execute(ctx, assetRequest(999999))
	require.Error(t, err)

	var notFoundErr errs.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestCreateAssetRecordsMetadata(t *testing.T) {
	ctx := context.Background()
	created, err := website.NewCreateWebsite(uowFactory).Execute(ctx,
		&dto.CreateWebsiteRequest{Name: "Asset home"})
	require.NoError(t, err)

	createdAsset, err := asset.NewCreateAsset(uowFactory).Execute(ctx, assetRequest(created.ID))
	require.NoError(t, err)
	require.NotZero(t, createdAsset.ID)
	require.Equal(t, "banner.png", createdAsset.OriginalName)
	require.Equal(t, int64(2048), createdAsset.FileSize)

	assets, err := query.NewGetAssets(uowFactory).Query(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.Equal(t, createdAsset.ID, assets[0].ID)
}

func TestDeleteAssetReportsExistence(t *testing.T) {
	ctx := context.Background()
	created, err := website.NewCreateWebsite(uowFactory).Execute(ctx,
		&dto.CreateWebsiteRequest{Name: "Asset delete"})
	require.NoError(t, err)

	createdAsset, err := asset.NewCreateAsset(uowFactory).Execute(ctx, assetRequest(created.ID))
	require.NoError(t, err)

	SUT := asset.NewDeleteAsset(uowFactory)
	deleted, err := SUT.Execute(ctx, createdAsset.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = SUT.Execute(ctx, createdAsset.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func cleanup(ctx context.Context) {
	for _, table := range []string{"cms.assets", "cms.websites"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Panicf("err cleaning up asset test %v", err)
		}
	}
}
