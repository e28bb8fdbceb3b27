package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords(n int) []*record {
	out := make([]*record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &record{ID: fmt.Sprintf("r%02d", i)})
	}
	return out
}

func testResolver(records []*record) Resolver[*record] {
	return func(id, param string) (*record, error) {
		for _, r := range records {
			if r.ID == id {
				return r, nil
			}
		}
		return nil, fmt.Errorf("no such record %s (%s)", id, param)
	}
}

func TestApplyListOptionsDefaults(t *testing.T) {
	records := testRecords(25)
	resolve := testResolver(records)

	page, hasMore, err := ApplyListOptions(records, ListParams{}, resolve)
	require.NoError(t, err)
	assert.Len(t, page, 10, "default limit is 10")
	assert.True(t, hasMore)
	assert.Equal(t, "r00", page[0].ID)

	page, hasMore, err = ApplyListOptions(records, ListParams{Limit: 500}, resolve)
	require.NoError(t, err)
	assert.Len(t, page, 25, "limit clamps to 100")
	assert.False(t, hasMore)
}

func TestApplyListOptionsStartingAfter(t *testing.T) {
	records := testRecords(10)
	resolve := testResolver(records)

	page, hasMore, err := ApplyListOptions(records, ListParams{Limit: 3, StartingAfter: "r04"}, resolve)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, "r05", page[0].ID)
	assert.Equal(t, "r07", page[2].ID)
	assert.True(t, hasMore)

	page, hasMore, err = ApplyListOptions(records, ListParams{Limit: 3, StartingAfter: "r08"}, resolve)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "r09", page[0].ID)
	assert.False(t, hasMore)
}

func TestApplyListOptionsEndingBefore(t *testing.T) {
	records := testRecords(10)
	resolve := testResolver(records)

	page, hasMore, err := ApplyListOptions(records, ListParams{Limit: 3, EndingBefore: "r05"}, resolve)
	require.NoError(t, err)
	require.Len(t, page, 3)
	// The 3 records immediately before the cursor, in forward order.
	assert.Equal(t, "r02", page[0].ID)
	assert.Equal(t, "r04", page[2].ID)
	assert.True(t, hasMore)

	page, hasMore, err = ApplyListOptions(records, ListParams{Limit: 5, EndingBefore: "r02"}, resolve)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "r00", page[0].ID)
	assert.False(t, hasMore)
}

func TestApplyListOptionsStartingAfterWins(t *testing.T) {
	records := testRecords(10)
	resolve := testResolver(records)

	page, _, err := ApplyListOptions(records, ListParams{
		Limit:         2,
		StartingAfter: "r03",
		EndingBefore:  "r09",
	}, resolve)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "r04", page[0].ID)
}

func TestApplyListOptionsUnknownCursor(t *testing.T) {
	records := testRecords(3)
	resolve := testResolver(records)

	_, _, err := ApplyListOptions(records, ListParams{StartingAfter: "r99"}, resolve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting_after")

	_, _, err = ApplyListOptions(records, ListParams{EndingBefore: "r99"}, resolve)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ending_before")
}

func TestApplyListOptionsWalksWholeCollection(t *testing.T) {
	records := testRecords(23)
	resolve := testResolver(records)

	var seen []string
	cursor := ""
	for {
		params := ListParams{Limit: 5, StartingAfter: cursor}
		page, hasMore, err := ApplyListOptions(records, params, resolve)
		require.NoError(t, err)
		for _, r := range page {
			seen = append(seen, r.ID)
		}
		if !hasMore {
			break
		}
		cursor = page[len(page)-1].ID
	}

	require.Len(t, seen, 23, "cursor walk must visit every record exactly once")
	for i, id := range seen {
		assert.Equal(t, fmt.Sprintf("r%02d", i), id)
	}
}
