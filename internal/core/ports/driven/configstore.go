package driven

// ConfigStore provides persistent application configuration.
// Keys are flat strings (e.g., "docsrs.base_url").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value, "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer configuration value, 0 if unset.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value, false if unset.
	GetBool(key string) bool

	// GetFloat retrieves a float configuration value, 0 if unset.
	GetFloat(key string) float64

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Delete removes a configuration value and persists the change.
	Delete(key string) error
}
