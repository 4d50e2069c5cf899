package app

import (
	"go.uber.org/zap"

	"github.com/nikbrunner/vodmarks/internal/prefs"
)

// ToggleTheme switches between the dark and light theme.
func (c *Controller) ToggleTheme() prefs.Theme {
	c.mu.Lock()
	err := c.store.ToggleTheme()
	theme := c.store.Theme()
	c.mu.Unlock()

	if err != nil {
		c.logger.Warn("theme not saved", zap.Error(err))
	}
	if theme == prefs.ThemeLight {
		c.info("Switched to light theme")
	} else {
		c.info("Switched to dark theme")
	}
	return theme
}

// SetViewMode switches between card and list display.
func (c *Controller) SetViewMode(mode prefs.ViewMode) {
	c.mu.Lock()
	err := c.store.SetViewMode(mode)
	c.mu.Unlock()
	if err != nil {
		c.logger.Warn("view mode not saved", zap.Error(err))
	}
}
