package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

func newTable() *MemoryTable[row] {
	return NewMemoryTable(func(r row) string { return r.ID })
}

func TestMemoryTableKeepsInsertionOrder(t *testing.T) {
	tbl := newTable()
	require.True(t, tbl.Insert(row{ID: "b"}))
	require.True(t, tbl.Insert(row{ID: "a"}))
	require.True(t, tbl.Insert(row{ID: "c"}))
	require.False(t, tbl.Insert(row{ID: "a"}))

	require.Equal(t, []row{{ID: "b"}, {ID: "a"}, {ID: "c"}}, tbl.All())

	require.True(t, tbl.Delete("a"))
	require.False(t, tbl.Delete("a"))
	require.Equal(t, []row{{ID: "b"}, {ID: "c"}}, tbl.All())
}

func TestMemoryTableUpdate(t *testing.T) {
	tbl := newTable()
	require.False(t, tbl.Update(row{ID: "x", Name: "ghost"}))

	tbl.Insert(row{ID: "x", Name: "old"})
	require.True(t, tbl.Update(row{ID: "x", Name: "new"}))

	got, ok := tbl.Get("x")
	require.True(t, ok)
	require.Equal(t, "new", got.Name)
}

func TestMemoryTableReplace(t *testing.T) {
	tbl := newTable()
	tbl.Insert(row{ID: "old"})

	tbl.Replace([]row{{ID: "1"}, {ID: "2"}, {ID: "1", Name: "dup"}})

	_, ok := tbl.Get("old")
	require.False(t, ok)
	require.Equal(t, []row{{ID: "1", Name: "dup"}, {ID: "2"}}, tbl.All())
}

func TestMemoryTableUpdateIf(t *testing.T) {
	tbl := newTable()
	require.True(t, tbl.Insert(row{ID: "a", Name: "old"}))

	found, applied := tbl.UpdateIf(row{ID: "a", Name: "new"}, func(cur row) bool { return cur.Name == "stale" })
	require.True(t, found)
	require.False(t, applied)
	got, _ := tbl.Get("a")
	require.Equal(t, "old", got.Name)

	found, applied = tbl.UpdateIf(row{ID: "a", Name: "new"}, func(cur row) bool { return cur.Name == "old" })
	require.True(t, found)
	require.True(t, applied)
	got, _ = tbl.Get("a")
	require.Equal(t, "new", got.Name)

	found, applied = tbl.UpdateIf(row{ID: "zz"}, func(row) bool { return true })
	require.False(t, found)
	require.False(t, applied)
}

func TestNextVersion(t *testing.T) {
	prev := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	later := prev.Add(1500 * time.Microsecond)
	require.Equal(t, prev.Add(time.Millisecond), NextVersion(prev, later))

	// A clock that has not advanced still yields a newer stamp.
	require.Equal(t, prev.Add(time.Millisecond), NextVersion(prev, prev))
	require.True(t, NextVersion(prev, prev.Add(-time.Hour)).After(prev))
}
