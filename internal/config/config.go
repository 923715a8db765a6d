package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"  validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"      validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler" validate:"required"`
	Vocab     VocabConfig     `mapstructure:"vocab"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// SchedulerConfig contains the training scheduler defaults. DailyNewLimit
// is the default daily cap on newly introduced words; API callers may
// override it per request, and it is always threaded explicitly into
// scheduling calls rather than read as ambient state.
type SchedulerConfig struct {
	DailyNewLimit    int     `mapstructure:"daily_new_limit"   validate:"required,gt=0"`
	RequestRetention float64 `mapstructure:"request_retention" validate:"omitempty,gt=0,lte=1"`
}

// VocabConfig contains the remote vocabulary catalog settings.
type VocabConfig struct {
	SourceURL string `mapstructure:"source_url" validate:"required,url"`
}
