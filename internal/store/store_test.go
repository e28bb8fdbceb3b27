package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string
	Value int
}

func (r *record) ObjectID() string { return r.ID }

func TestDataPutGet(t *testing.T) {
	d := NewData[*record]()
	d.Put("acct_a", &record{ID: "r1", Value: 1})

	got, ok := d.Get("acct_a", "r1")
	require.True(t, ok)
	assert.Equal(t, 1, got.Value)

	_, ok = d.Get("acct_a", "r2")
	assert.False(t, ok)

	_, ok = d.Get("acct_b", "r1")
	assert.False(t, ok, "records must not leak across accounts")
}

func TestDataSharedInstances(t *testing.T) {
	d := NewData[*record]()
	d.Put("acct_a", &record{ID: "r1", Value: 1})

	first, ok := d.Get("acct_a", "r1")
	require.True(t, ok)
	first.Value = 42

	second, ok := d.Get("acct_a", "r1")
	require.True(t, ok)
	assert.Equal(t, 42, second.Value, "mutations must be visible to later readers")

	all := d.GetAll("acct_a")
	require.Len(t, all, 1)
	assert.Same(t, first, all[0])
}

func TestDataInsertionOrder(t *testing.T) {
	d := NewData[*record]()
	for _, id := range []string{"r3", "r1", "r2"} {
		d.Put("acct_a", &record{ID: id})
	}

	var ids []string
	for _, r := range d.GetAll("acct_a") {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r3", "r1", "r2"}, ids)
}

func TestDataOverwriteKeepsPosition(t *testing.T) {
	d := NewData[*record]()
	d.Put("acct_a", &record{ID: "r1", Value: 1})
	d.Put("acct_a", &record{ID: "r2", Value: 2})
	d.Put("acct_a", &record{ID: "r1", Value: 10})

	all := d.GetAll("acct_a")
	require.Len(t, all, 2)
	assert.Equal(t, "r1", all[0].ID)
	assert.Equal(t, 10, all[0].Value)
}

func TestDataRemove(t *testing.T) {
	d := NewData[*record]()
	d.Put("acct_a", &record{ID: "r1"})
	d.Put("acct_a", &record{ID: "r2"})
	d.Put("acct_a", &record{ID: "r3"})

	d.Remove("acct_a", "r2")
	assert.False(t, d.Contains("acct_a", "r2"))

	var ids []string
	for _, r := range d.GetAll("acct_a") {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"r1", "r3"}, ids)

	// Removing a missing id is a no-op.
	d.Remove("acct_a", "r2")
	d.Remove("acct_missing", "r1")
}
