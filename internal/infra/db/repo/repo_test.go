package repo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
	"github.com/pagesmith/pagesmith-backend/internal/infra/db/repo"
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

func TestInsertWebsiteReturnsAssignedID(t *testing.T) {
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	domain := "example.com"
	now := time.Now().Truncate(0)
	websites := repo.NewWebsiteRepo(tx)

	ctx := context.Background()
	inserted, err := websites.Insert(ctx, db.Website{
		Name:      "Repo site",
		Domain:    &domain,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NotZero(t, inserted.ID)

	fetched, err := websites.GetByID(ctx, inserted.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "Repo site", fetched.Name)
	require.Equal(t, "example.com", *fetched.Domain)
	require.WithinDuration(t, now, fetched.CreatedAt, time.Microsecond)
}

func TestGetWebsiteReturnsNilWhenAbsent(t *testing.T) {
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	fetched, err := repo.NewWebsiteRepo(tx).GetByID(context.Background(), 999999)
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestMaxSortOrderNilOnEmptyPage(t *testing.T) {
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	max, err := repo.NewBlockRepo(tx).MaxSortOrder(context.Background(), 999999)
	require.NoError(t, err)
	require.Nil(t, max)
}

func TestUnsetHomepagesClearsAllPagesOfWebsite(t *testing.T) {
	uow := uowFactory.GetUoW()
	tx, err := uow.Begin()
	require.NoError(t, err)
	defer uow.Rollback()

	ctx := context.Background()
	now := time.Now()
	websites := repo.NewWebsiteRepo(tx)
	pages := repo.NewPageRepo(tx)

	site, err := websites.Insert(ctx, db.Website{Name: "Flip", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	_, err = pages.Insert(ctx, db.Page{
		WebsiteID: site.ID, Title: "Home", Slug: "home",
		IsHomepage: true, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	require.NoError(t, pages.UnsetHomepages(ctx, site.ID))

	listed, err := pages.ListByWebsite(ctx, site.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.False(t, listed[0].IsHomepage)
}

func cleanup(ctx context.Context) {
	for _, table := range []string{"cms.page_blocks", "cms.pages", "cms.assets", "cms.websites"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Panicf("err cleaning up repo test %v", err)
		}
	}
}
