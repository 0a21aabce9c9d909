package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/kafka"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/logger"
	"github.com/AlexeyVin20/LibraryAPI-sub000/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"INVENTORY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"INVENTORY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

type Accrual struct {
	DailyRateCents int64         `yaml:"dailyRateCents" envconfig:"FINE_DAILY_RATE_CENTS" default:"1000"`
	Interval       time.Duration `yaml:"interval" envconfig:"FINE_ACCRUAL_INTERVAL" default:"6h"`
	QueueTTL       time.Duration `yaml:"queueTTL" envconfig:"RESERVATION_QUEUE_TTL" default:"168h"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Accrual  Accrual      `yaml:"accrual"`
	Log      logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
