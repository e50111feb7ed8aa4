package block_test

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
	"github.com/pagesmith/pagesmith-backend/internal/infra/db"
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

func createTestPage(t *testing.T, name string) int64 {
	t.Helper()
	ctx := context.Background()
	createdWebsite, err := website.NewCreateWebsite(uowFactory).Execute(ctx,
		&dto.CreateWebsiteRequest{Name: name})
	require.NoError(t, err)

	createdPage, err := page.NewCreatePage(uowFactory).Execute(ctx, &dto.CreatePageRequest{
		WebsiteID: createdWebsite.ID,
		Title:     name,
		Slug:      "p",
	})
	require.NoError(t, err)
	return createdPage.ID
}

func TestCreateBlockFailsWhenPageMissing(t *testing.T) {
	ctx := context.Background()
	templateID := testinfra.SeedTemplate(ctx, "hero", "headers")

	_, err := block.NewCreatePageBlock(uowFactory).Execute(ctx, &dto.CreatePageBlockRequest{
		PageID:          999999,
		BlockTemplateID: templateID,
	})
	require.Error(t, err)

	var notFoundErr errs.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestCreateBlockFailsWhenTemplateMissing(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "no template")

	_, err := block.NewCreatePageBlock(uowFactory).Execute(ctx, &dto.CreatePageBlockRequest{
		PageID:          pageID,
		BlockTemplateID: 999999,
	})
	require.Error(t, err)

	var notFoundErr errs.NotFoundError
	require.True(t, errors.As(err, &notFoundErr))
}

func TestCreateBlocksAppendSortOrder(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "append order")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	SUT := block.NewCreatePageBlock(uowFactory)
	for i := 0; i < 4; i++ {
		created, err := SUT.Execute(ctx, &dto.CreatePageBlockRequest{
			PageID:          pageID,
			BlockTemplateID: templateID,
		})
		require.NoError(t, err)
		require.Equal(t, i, created.SortOrder)
	}
}

func TestCreateBlockKeepsExplicitSortOrder(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "explicit order")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	sortOrder := 42
	created, err := block.NewCreatePageBlock(uowFactory).Execute(ctx, &dto.CreatePageBlockRequest{
		PageID:          pageID,
		BlockTemplateID: templateID,
		SortOrder:       &sortOrder,
		Content:         map[string]interface{}{"text": "custom"},
	})
	require.NoError(t, err)
	require.Equal(t, 42, created.SortOrder)
	require.Equal(t, map[string]interface{}{"text": "custom"}, db.RawMessageToMap(created.Content))
}

func TestReorderAssignsPositionsAndSkipsOmitted(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "reorder")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	create := block.NewCreatePageBlock(uowFactory)
	var ids []int64
	for i := 0; i < 3; i++ {
		created, err := create.Execute(ctx, &dto.CreatePageBlockRequest{
			PageID:          pageID,
			BlockTemplateID: templateID,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	err := block.NewReorderPageBlocks(uowFactory).Execute(ctx, &dto.ReorderBlocksRequest{
		BlockIDs: []int64{ids[2], ids[0], ids[1]},
	})
	require.NoError(t, err)

	blocks, err := query.NewGetPageBlocks(uowFactory).Query(ctx, pageID)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	require.Equal(t, ids[2], blocks[0].ID)
	require.Equal(t, ids[0], blocks[1].ID)
	require.Equal(t, ids[1], blocks[2].ID)
	for i, b := range blocks {
		require.Equal(t, i, b.SortOrder)
	}
}

func TestReorderEmptyListIsNoOp(t *testing.T) {
	ctx := context.Background()
	err := block.NewReorderPageBlocks(uowFactory).Execute(ctx, &dto.ReorderBlocksRequest{})
	require.NoError(t, err)
}

func TestGetPageBlocksSortedBySortOrder(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "sorted fetch")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	create := block.NewCreatePageBlock(uowFactory)
	for _, order := range []int{5, 1, 3} {
		o := order
		_, err := create.Execute(ctx, &dto.CreatePageBlockRequest{
			PageID:          pageID,
			BlockTemplateID: templateID,
			SortOrder:       &o,
		})
		require.NoError(t, err)
	}

	blocks, err := query.NewGetPageBlocks(uowFactory).Query(ctx, pageID)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	for i := 1; i < len(blocks); i++ {
		require.LessOrEqual(t, blocks[i-1].SortOrder, blocks[i].SortOrder)
	}
}

func TestUpdateBlockMergesProvidedFields(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "block update")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	created, err := block.NewCreatePageBlock(uowFactory).Execute(ctx, &dto.CreatePageBlockRequest{
		PageID:          pageID,
		BlockTemplateID: templateID,
		Content:         map[string]interface{}{"text": "before"},
		Settings:        map[string]interface{}{"align": "left"},
	})
	require.NoError(t, err)

	updated, err := block.NewUpdatePageBlock(uowFactory).Execute(ctx, created.ID,
		&dto.UpdatePageBlockRequest{Content: map[string]interface{}{"text": "after"}})
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"text": "after"}, db.RawMessageToMap(updated.Content))
	require.Equal(t, map[string]interface{}{"align": "left"}, db.RawMessageToMap(updated.Settings))
}

func TestDeleteBlockReportsExistence(t *testing.T) {
	ctx := context.Background()
	pageID := createTestPage(t, "block delete")
	templateID := testinfra.SeedTemplate(ctx, "text", "content")

	created, err := block.NewCreatePageBlock(uowFactory).Execute(ctx, &dto.CreatePageBlockRequest{
		PageID:          pageID,
		BlockTemplateID: templateID,
	})
	require.NoError(t, err)

	SUT := block.NewDeletePageBlock(uowFactory)
	deleted, err := SUT.Execute(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = SUT.Execute(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func cleanup(ctx context.Context) {
	for _, table := range []string{"cms.page_blocks", "cms.pages", "cms.block_templates", "cms.websites"} {
		if _, err := testinfra.Pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Panicf("err cleaning up block test %v", err)
		}
	}
}
