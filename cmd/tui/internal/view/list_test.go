package view

import (
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/meeledger/internal/ledger"
	"github.com/MrJamesThe3rd/meeledger/internal/settings"
	"github.com/MrJamesThe3rd/meeledger/internal/storage/memory"
)

func newSubmittedList(t *testing.T, amount string) (ListModel, *ledger.Store) {
	t.Helper()

	repo := memory.New()
	store := ledger.NewStore(ledger.NewBridge(repo, ledger.DefaultStartingBalance, slog.Default()))

	m := NewListModel(store, settings.NewService(repo), NewStyles(settings.ThemeDark))
	m.state = listStateAdd
	m.values.amount = amount
	m.form.State = huh.StateCompleted

	return m, store
}

func TestListModel_CompletedFormAddsOnce(t *testing.T) {
	m, store := newSubmittedList(t, "120")

	next, addCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ListModel)
	require.NotNil(t, addCmd)
	assert.Equal(t, listStateSubmitting, m.state)

	next, repeat := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ListModel)
	assert.Nil(t, repeat)

	result, ok := addCmd().(addResultMsg)
	require.True(t, ok)
	require.NoError(t, result.err)
	assert.Equal(t, 1, store.Len())

	next, _ = m.Update(result)
	m = next.(ListModel)

	assert.Equal(t, listStateAdd, m.state)
	assert.Equal(t, huh.StateNormal, m.form.State)
	assert.Equal(t, 1, store.Len())
}

func TestListModel_FailedAddReturnsToForm(t *testing.T) {
	m, store := newSubmittedList(t, "abc")

	next, addCmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ListModel)
	require.NotNil(t, addCmd)

	result, ok := addCmd().(addResultMsg)
	require.True(t, ok)
	require.Error(t, result.err)

	next, _ = m.Update(result)
	m = next.(ListModel)

	assert.Equal(t, listStateAdd, m.state)
	assert.Equal(t, huh.StateNormal, m.form.State)
	assert.Error(t, m.err)
	assert.Equal(t, 0, store.Len())
}
