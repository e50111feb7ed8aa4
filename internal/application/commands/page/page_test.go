package page_test

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/pagesmith/pagesmith-backend/internal/application/commands/block"
	"github.com/pagesmith/pagesmith-backend/internal/application/commands/page"
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

func createTestWebsite(t *testing.T, name string) int64 {
	t.Helper()
	created, err := website.NewCreateWebsite(uowFactory).Execute(context.Background(),
		&dto.CreateWebsiteRequest{Name: name})
	require.NoError(t, err)
	return created.ID
}

func TestCreatePageFailsWhenWebsiteMissing(t *testing.T) {
	ctx := context.Background()
	SUT := page.NewCreatePage(uowFactory)

	_, err := SUT.Execute(ctx, &dto.CreatePageRequest{
		WebsiteID: 999999,
		Title:     "Home",
		Slug:      "home",
	})
	require.Error(t, err)

	var notFoundErr errs.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestCreatePageAssignsSortOrderByCreation(t *testing.T) {
	ctx := context.Background()
	websiteID := createTestWebsite(t, "Ordering")
	SUT := page.NewCreatePage(uowFactory)

	for i, slug := range []string{"one", "two", "three"} {
		created, err := SUT.Execute(ctx, &dto.CreatePageRequest{
			WebsiteID: websiteID,
			Title:     "Page " + slug,
			Slug:      slug,
		})
		require.NoError(t, err)
		require.Equal(t, i, created.SortOrder)
		require.False(t, created.IsPublished)
	}
}

func TestCreateHomepageUnsetsPreviousHomepage(t *testing.T) {
	ctx := context.Background()
	websiteID := createTestWebsite(t, "Homepage flips")
	SUT := page.NewCreatePage(uowFactory)

	first, err := SUT.Execute(ctx, &dto.CreatePageRequest{
		WebsiteID:  websiteID,
		Title:      "First",
		Slug:       "first",
		IsHomepage: true,
	})
	require.NoError(t, err)
	require.True(t, first.IsHomepage)

	second, err := SUT.Execute(ctx, &dto.CreatePageRequest{
		WebsiteID:  websiteID,
		Title:      "Second",
		Slug:       "second",
		IsHomepage: true,
	})
	require.NoError(t, err)
	require.True(t, second.IsHomepage)

	var homepages int
	require.NoError(t, testinfra.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM cms.pages WHERE website_id = $1 AND is_homepage", websiteID).Scan(&homepages))
	require.Equal(t, 1, homepages)

	reloaded, err := query.NewGetPage(uowFactory).Query(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, reloaded.IsHomepage)
}

func TestUpdatePagePromotingHomepageUnsetsSibling(t *testing.T) {
	ctx := context.Background()
	websiteID := createTestWebsite(t, "Homepage update")
	create := page.NewCreatePage(uowFactory)

	first, err := create.Execute(ctx, &dto.CreatePageRequest{
		WebsiteID:  websiteID,
		Title:      "First",
		Slug:       "first",
		IsHomepage: true,
	})
	require.NoError(t, err)

	second, err := create.Execute(ctx, &dto.CreatePageRequest{
		WebsiteID: websiteID,
		Title:     "Second",
		Slug:      "second",
	})
	require.NoError(t, err)

	isHomepage := true
	updated, err := page.NewUpdatePage(uowFactory).Execute(ctx, second.ID,
		&dto.UpdatePageRequest{IsHomepage: &isHomepage})
	require.NoError(t, err)
	require.True(t, updated.IsHomepage)

	reloaded, err := query.NewGetPage(uowFactory).Query(ctx, first.ID)
	require.NoError(t, err)
	require.False(t, reloaded.IsHomepage)
}

func TestUpdatePagePartialKeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	websiteID := createTestWebsite(t, "Partial update")

	meta := "about us"
	created, err := page.NewCreatePage(uowFactory).Execute(ctx, &dto.CreatePageRequest{
		WebsiteID:       websiteID,
		Title:           "About",
		Slug:            "about",
		MetaDescription: &meta,
	})
	require.NoError(t, err)

	title := "About Us"
	updated, err := page.NewUpdatePage(uowFactory).Execute(ctx, created.ID,
		&dto.UpdatePageRequest{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "About Us", updated.Title)
	require.Equal(t, "about", updated.Slug)
	require.NotNil(t, updated.MetaDescription)
	require.Equal(t, "about us", *updated.MetaDescription)
}

func TestUpdatePageFailsWhenMissing(t *testing.T) {
	ctx := context.Background()
	title := "Ghost"
	_, err := page.NewUpdatePage(uowFactory).Execute(ctx, 999999,
		&dto.UpdatePageRequest{Title: &title})
	require.Error(t, err)

	var notFoundErr errs.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestDeletePageRemovesItsBlocks(t *testing.T) {
	ctx := context.Background()
	websiteID := createTestWebsite(t, "Cascade page")

	created, err := page.NewCreatePage(uowFactory).Execute(ctx, &dto.CreatePageRequest{
		WebsiteID: websiteID,
		Title:     "Blocked",
		Slug:      "blocked",
	})
	require.NoError(t, err)

	templateID := testinfra.SeedTemplate(ctx, "text", "content")
	createBlock := block.NewCreatePageBlock(uowFactory)
	for i := 0; i < 3; i++ {
		_, err = createBlock.Execute(ctx, &dto.CreatePageBlockRequest{
			PageID:          created.ID,
			BlockTemplateID: templateID,
		})
		require.NoError(t, err)
	}

	deleted, err := page.NewDeletePage(uowFactory).Execute(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	blocks, err := query.NewGetPageBlocks(uowFactory).Query(ctx, created.ID)
	require.NoError(t, err)
	require.Empty(t, blocks)
}

func TestDeletePageReportsFalseWhenMissing(t *testing.T) {
	ctx := context.Background()
	deleted, err := page.NewDeletePage(uowFactory).Execute(ctx, 999999)
	require.NoError(t, err)
	require.False(t, deleted)
}

func cleanup(ctx context.Context) {
	for _, table := range []string{"cms.page_blocks", "cms.pages", "cms.block_templates", "cms.websites"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Panicf("err cleaning up page test %v", err)
		}
	}
}
