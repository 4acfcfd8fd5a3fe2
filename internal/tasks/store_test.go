package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileSeedsDefaultList(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope", "userdata.json"))

	require.NoError(t, m.Load())

	require.Len(t, m.Lists(), 1)
	assert.Equal(t, DefaultListTitle, m.Lists()[0].Title)
}

func TestLoadCorruptFileSeedsDefaultList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	m := NewManager(path)

	require.NoError(t, m.Load())

	require.Len(t, m.Lists(), 1)
	assert.Equal(t, DefaultListTitle, m.Lists()[0].Title)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "userdata.json")

	m := NewManager(path)
	require.NoError(t, m.Load())
	work, err := m.CreateList("Work")
	require.NoError(t, err)
	due := NewDate(2025, 8, 29)
	_, err = m.CreateTask(work.ID, Task{
		Title:      "ship release",
		Note:       "tag and announce",
		Due:        &due,
		Tags:       []string{"release", "urgent"},
		Priority:   PriorityHigh,
		Recurrence: RecurMonthly,
	})
	require.NoError(t, err)
	require.NoError(t, m.Save())

	loaded := NewManager(path)
	require.NoError(t, loaded.Load())

	require.Len(t, loaded.Lists(), 2)
	got, err := loaded.List(work.ID)
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	task := got.Tasks[0]
	assert.Equal(t, "ship release", task.Title)
	assert.Equal(t, "tag and announce", task.Note)
	assert.Equal(t, NewDate(2025, 8, 29), *task.Due)
	assert.Equal(t, []string{"release", "urgent"}, task.Tags)
	assert.Equal(t, PriorityHigh, task.Priority)
	assert.Equal(t, RecurMonthly, task.Recurrence)
}

func TestLoadRestoresIDCounters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")

	m := NewManager(path)
	require.NoError(t, m.Load())
	work, _ := m.CreateList("Work")
	first, _ := m.CreateTask(work.ID, Task{Title: "a"})
	require.NoError(t, m.Save())

	loaded := NewManager(path)
	require.NoError(t, loaded.Load())
	newList, err := loaded.CreateList("Errands")
	require.NoError(t, err)
	newTask, err := loaded.CreateTask(newList.ID, Task{Title: "b"})
	require.NoError(t, err)

	assert.Greater(t, newList.ID, work.ID, "list IDs continue past the stored maximum")
	assert.Greater(t, newTask.ID, first.ID, "task IDs continue past the stored maximum")
}

func TestSaveIsAtomicEnoughToReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")
	m := NewManager(path)
	require.NoError(t, m.Load())
	require.NoError(t, m.Save())
	require.NoError(t, m.Save())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, 2, 3)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-03"`, string(b))

	var parsed Date
	require.NoError(t, parsed.UnmarshalJSON(b))
	assert.Equal(t, d, parsed)

	assert.Error(t, parsed.UnmarshalJSON([]byte(`"not-a-date"`)))
}
