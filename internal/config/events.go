package config

const (
	EventsDriverNone  = "none"
	EventsDriverRedis = "redis"
	EventsDriverSQS   = "sqs"

	DefaultEventsChannel = "payments.events"
)

// EventsConfig selects where payment lifecycle events are published
type EventsConfig struct {
	Driver  string      `yaml:"driver"`
	Channel string      `yaml:"channel"`
	Redis   RedisConfig `yaml:"redis"`
	SQS     SQSConfig   `yaml:"sqs"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SQSConfig struct {
	Region          string `yaml:"region"`
	QueueURL        string `yaml:"queue_url"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"`
}

func (c *EventsConfig) applyDefaults() {
	if c.Driver == "" {
		c.Driver = EventsDriverNone
	}
	if c.Channel == "" {
		c.Channel = DefaultEventsChannel
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.SQS.Region == "" {
		c.SQS.Region = "ap-northeast-2"
	}
}
