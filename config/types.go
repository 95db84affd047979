package config

// Config represents the complete configuration structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds Cloudreve server connection details
type ServerConfig struct {
	URL string `mapstructure:"url"`
	// Version selects the API generation: "auto", "v3" or "v4".
	Version string `mapstructure:"version"`
}

// AuthConfig holds the credential used for sign-in. Token takes
// precedence over email and password when both are present.
type AuthConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Token    string `mapstructure:"token"`
}

// UploadConfig contains upload tuning
type UploadConfig struct {
	// ChunkSize is the fallback chunk size in bytes when the server's
	// upload session does not dictate one.
	ChunkSize int64 `mapstructure:"chunk_size"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
