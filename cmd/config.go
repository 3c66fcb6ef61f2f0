package cmd

import (
	"fmt"
	"time"
)

// Config carries all process configuration, loaded from the environment in
// main.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	OrdersQueueName string
	ConsumerTimeout time.Duration
}

// PostgresDSN builds the connection string for the application database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// BootstrapDSN builds a connection string to the maintenance database, used
// once at startup to create the application database when it is missing.
func (c Config) BootstrapDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBSslMode,
	)
}

// RabbitMQURL builds the broker URL.
func (c Config) RabbitMQURL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		c.RabbitMQUser, c.RabbitMQPassword, c.RabbitMQHost, c.RabbitMQPort,
	)
}
