// Package plugins tracks metadata for the server extensions loaded into the
// running process, exposed read-only through the API.
package plugins

import (
	"fmt"
	"sort"
	"sync"
)

// Plugin describes one loaded extension.
type Plugin struct {
	Authors       []string
	Classifiers   []string
	Description   string
	Homepage      string
	Name          string
	ReferenceURLs []string
	Title         string
	Version       string
}

// Manager holds the loaded plugin set. It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
}

// NewManager creates an empty plugin manager.
func NewManager() *Manager {
	return &Manager{plugins: make(map[string]Plugin)}
}

// Register adds a plugin. The name identifies the plugin and must be unique.
func (m *Manager) Register(plugin Plugin) error {
	if plugin.Name == "" {
		return fmt.Errorf("plugin name must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plugins[plugin.Name]; ok {
		return fmt.Errorf("plugin already registered: %s", plugin.Name)
	}
	m.plugins[plugin.Name] = plugin
	return nil
}

// Get returns the plugin registered under the given name.
func (m *Manager) Get(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	plugin, ok := m.plugins[name]
	return plugin, ok
}

// Sorted returns all plugins ordered by name.
func (m *Manager) Sorted() []Plugin {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sorted := make([]Plugin, 0, len(m.plugins))
	for _, plugin := range m.plugins {
		sorted = append(sorted, plugin)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// Len returns the number of registered plugins.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.plugins)
}
