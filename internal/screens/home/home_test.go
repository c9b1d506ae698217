package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/limitz/internal/problemgen"
	"github.com/abhisek/limitz/internal/router"
	"github.com/abhisek/limitz/internal/store"
)

type statsRepo struct {
	store.EventRepo
	stats *store.AttemptStats
	calls int
}

func (r *statsRepo) AttemptStats(context.Context) (*store.AttemptStats, error) {
	r.calls++
	return r.stats, nil
}

func testGenerator(t *testing.T) problemgen.Generator {
	t.Helper()
	gen, err := problemgen.New(problemgen.DefaultConfig())
	require.NoError(t, err)
	return gen
}

func TestHomeWithoutHistory(t *testing.T) {
	h := New(testGenerator(t), nil)
	assert.Nil(t, h.Init())
	assert.True(t, h.menu.Items[1].Disabled)
	assert.Contains(t, h.View(80, 20), "No attempts yet")
}

func TestHomeLoadsStats(t *testing.T) {
	repo := &statsRepo{stats: &store.AttemptStats{Attempts: 4, Correct: 3}}
	h := New(testGenerator(t), repo)

	cmd := h.Init()
	require.NotNil(t, cmd)
	h.Update(cmd())
	assert.Contains(t, h.View(100, 30), "4 answered")
	assert.Contains(t, h.View(100, 30), "75% accuracy")

	repo.stats = &store.AttemptStats{Attempts: 5, Correct: 4}
	h.Update(h.Resume()())
	assert.Contains(t, h.View(100, 30), "5 answered")
	assert.Equal(t, 2, repo.calls)
}

func TestHomeMenuActions(t *testing.T) {
	h := New(testGenerator(t), &statsRepo{stats: &store.AttemptStats{}})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Practice", push.Screen.Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	require.NotNil(t, cmd)
	push, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "History", push.Screen.Title())

	_, cmd = h.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	_, ok = cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
