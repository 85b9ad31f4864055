package log

type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

type Config struct {
	Level  string `env:"LOG_LEVEL,default=info" validate:"required,oneof=trace debug info warn error fatal"`
	Format Format `env:"LOG_FORMAT,default=json" validate:"required,oneof=json console"`
}
