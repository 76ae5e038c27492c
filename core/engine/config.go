package engine

// Config holds configuration for the search engine connection.
type Config struct {
	// Host is the base URL of the Meilisearch instance.
	Host string `mapstructure:"host" default:"http://localhost:7700"`
	// APIKey is the master or admin key used for settings updates.
	APIKey string `mapstructure:"api_key" default:""`
	// IndexPrefix is prepended to every index name to build its uid.
	IndexPrefix string `mapstructure:"index_prefix" default:"tobira_"`
	// TimeoutSeconds bounds a single HTTP request to the engine.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// TaskTimeoutSeconds bounds the wait for an enqueued settings task.
	TaskTimeoutSeconds int `mapstructure:"task_timeout_seconds" default:"60"`
	// TaskPollMillis is the polling interval while waiting for a task.
	TaskPollMillis int `mapstructure:"task_poll_millis" default:"50"`
}
