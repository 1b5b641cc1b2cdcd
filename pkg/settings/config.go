package settings

type Config struct {
	Queue  Queue  `yaml:"queue"`
	Logger Logger `yaml:"logger"`
}

// Queue is the configuration for the queue implementation
type Queue struct {
	Kind            string `yaml:"kind" validate:"oneof=slice ring"`
	InitialCapacity int    `yaml:"initial_capacity" validate:"gte=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `yaml:"file_log_name"`
	MaxBackups  int    `yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `yaml:"max_age" validate:"gte=0"`
	MaxSize     int    `yaml:"max_size" validate:"gte=0"`
	Compress    bool   `yaml:"compress"`
}
