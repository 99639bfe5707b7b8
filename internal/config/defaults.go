package config

import "time"

const (
	defaultDirName = ".recipemaker"

	// DefaultWebhookURL is the local n8n test webhook the page was built against.
	DefaultWebhookURL = "http://localhost:5678/webhook-test/4019b6af-bdeb-43b1-88b4-5cbeece03333"

	defaultToastDuration = 3 * time.Second
	defaultLogLevel      = "info"
	defaultLogFile       = "recipemaker.log"
)

// Clipboard modes.
const (
	ClipboardAuto   = "auto"
	ClipboardSystem = "system"
	ClipboardOSC52  = "osc52"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	enabled := true
	render := true
	return &Config{
		Webhook: WebhookConfig{
			URL: DefaultWebhookURL,
		},
		Clipboard: ClipboardConfig{
			Mode: ClipboardAuto,
		},
		UI: UIConfig{
			RenderMarkdown: &render,
			ToastDuration:  defaultToastDuration,
		},
		Logging: LoggingConfig{
			Enabled: &enabled,
			Level:   defaultLogLevel,
			File:    defaultLogFile,
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Webhook.URL == "" {
		c.Webhook.URL = DefaultWebhookURL
	}
	if c.Clipboard.Mode == "" {
		c.Clipboard.Mode = ClipboardAuto
	}
	if c.UI.ToastDuration <= 0 {
		c.UI.ToastDuration = defaultToastDuration
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
