package cli

// Options carries the flags shared by every command.
type Options struct {
	SchemaFile  string // YAML or JSON schema document
	RedisURL    string // redis:// URL of a schema store
	RedisPrefix string // Key prefix inside the store
	Debug       bool
	LogLevel    string
}
