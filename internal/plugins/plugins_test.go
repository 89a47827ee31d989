package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(Plugin{
		Name:    "alerts_via_sms",
		Title:   "SMS Alerts",
		Version: "1.2",
		Authors: []string{"Jane Roe"},
	}))

	plugin, ok := m.Get("alerts_via_sms")
	require.True(t, ok)
	assert.Equal(t, "SMS Alerts", plugin.Title)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestRegisterValidation(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.Register(Plugin{Name: "one"}))

	err := m.Register(Plugin{Name: "one"})
	require.Error(t, err)
	assert.EqualError(t, err, "plugin already registered: one")

	err = m.Register(Plugin{})
	require.Error(t, err)
	assert.EqualError(t, err, "plugin name must not be empty")
}

func TestSortedOrdersByName(t *testing.T) {
	m := NewManager()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, m.Register(Plugin{Name: name}))
	}

	names := make([]string, 0, m.Len())
	for _, plugin := range m.Sorted() {
		names = append(names, plugin.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestLen(t *testing.T) {
	m := NewManager()
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Register(Plugin{Name: "one"}))
	assert.Equal(t, 1, m.Len())
}
