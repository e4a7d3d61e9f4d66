package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screens/answer"
	"github.com/keyquiz/keyquiz/internal/screens/placeholder"
	"github.com/keyquiz/keyquiz/internal/store"
)

type mockEventRepo struct {
	records []store.SessionRecord
}

func (m *mockEventRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func (m *mockEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return m.records, nil
}

func record(outcome string, score int) store.SessionRecord {
	return store.SessionRecord{
		Timestamp:        time.Now(),
		SessionEventData: store.SessionEventData{Action: store.ActionEnd, Outcome: outcome, Score: score},
	}
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, Stats{}, computeStats(nil))

	st := computeStats([]store.SessionRecord{
		record("timed_out", 4),
		record("exhausted", 9),
		record("timed_out", 2),
	})
	assert.Equal(t, 3, st.Played)
	assert.Equal(t, 9, st.BestScore)
	assert.Equal(t, "timed_out", st.LastOutcome)
	assert.Equal(t, EmblemTimeout, emblemFor(st.LastOutcome))
}

func TestHomeLoadsStats(t *testing.T) {
	h := New(Deps{Events: &mockEventRepo{records: []store.SessionRecord{record("exhausted", 5)}}})

	cmd := h.Init()
	require.NotNil(t, cmd)
	h.Update(cmd())

	assert.Equal(t, 1, h.stats.Played)
	assert.NotEmpty(t, h.View(120, 40))
}

func TestQuizWithoutSourceOpensPlaceholder(t *testing.T) {
	h := New(Deps{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &placeholder.PlaceholderScreen{}, msg.Screen)
}

func TestAnswerLookupEntry(t *testing.T) {
	h := New(Deps{})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, "ANSWER LOOKUP", h.menu.SelectedLabel())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &answer.AnswerScreen{}, msg.Screen)
}
