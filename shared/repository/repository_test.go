package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nihom/infras/otel/mocks"
	"nihom/infras/sqlite"
	"nihom/shared/dto"
)

type testItem struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Order int    `db:"sort_order"`
}

func setupRepo(t *testing.T) Repository[testItem] {
	t.Helper()

	conn, err := sqlite.Open(":memory:", 5000)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
	})

	_, err = conn.DB.Exec(`CREATE TABLE items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`)
	require.NoError(t, err)

	return NewRepository[testItem]("item", "items", "id", conn, mocks.NewOtel())
}

func filterByName(name string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "name", Value: name, Operator: dto.FilterOperatorEq, Table: "items"},
		},
	}
}

func TestInsertColumnsExcludePrimary(t *testing.T) {
	repo := setupRepo(t)

	assert.Equal(t, []string{"name", "sort_order"}, repo.InsertColumns)
}

func TestInsertReturnsAssignedID(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, testItem{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.Insert(ctx, testItem{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)
}

func TestGetMissReturnsZeroModel(t *testing.T) {
	repo := setupRepo(t)

	item, err := repo.Get(context.Background(), filterByName("absent"))
	require.NoError(t, err)
	assert.Zero(t, item.ID)
}

func TestGetAllTiebreaksOnPrimaryKey(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for _, item := range []testItem{
		{Name: "c", Order: 2},
		{Name: "a", Order: 1},
		{Name: "b", Order: 1},
	} {
		_, err := repo.Insert(ctx, item)
		require.NoError(t, err)
	}

	items, err := repo.GetAll(ctx, dto.OrderedBy("sort_order"), dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// Equal sort_order keeps insertion order: "a" (id 2) before "b" (id 3).
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
	assert.Equal(t, "c", items[2].Name)
}

func TestUpdateRequiresFilter(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Update(context.Background(), map[string]any{"name": "x"}, dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

func TestDeleteRequiresFilter(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Delete(context.Background(), dto.FilterGroup{})
	assert.ErrorIs(t, err, errRequiredFilter)
}

func TestUpdateChangesMatchingRowOnly(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, testItem{Name: "keep", Order: 1})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, testItem{Name: "change", Order: 2})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, map[string]any{"sort_order": 9}, filterByName("change")))

	changed, err := repo.Get(ctx, filterByName("change"))
	require.NoError(t, err)
	assert.Equal(t, 9, changed.Order)

	kept, err := repo.Get(ctx, filterByName("keep"))
	require.NoError(t, err)
	assert.Equal(t, 1, kept.Order)
}

func TestExistAndCount(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, testItem{Name: "a"})
	require.NoError(t, err)

	exist, err := repo.Exist(ctx, filterByName("a"))
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = repo.Exist(ctx, filterByName("b"))
	require.NoError(t, err)
	assert.False(t, exist)

	count, err := repo.Count(ctx, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
