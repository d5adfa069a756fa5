package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultPort        = "8000"
	DefaultEventsTopic = "orders.received"
)

type ServerConfig struct {
	Port string // ":8000"
}

// StoreConfig holds the document store connection. An empty URL means the
// service runs without a store.
type StoreConfig struct {
	URL  string
	Name string
}

type EventsConfig struct {
	Brokers []string
	Topic   string
}

type SchedulerConfig struct {
	HeartbeatSpec string
}

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Events    EventsConfig
	Scheduler SchedulerConfig
}

// env bindings, viper key -> environment variable
var envKeys = map[string]string{
	"port":           "PORT",
	"database.url":   "DATABASE_URL",
	"database.name":  "DATABASE_NAME",
	"events.brokers": "ORDER_EVENTS_BROKERS",
	"events.topic":   "ORDER_EVENTS_TOPIC",
	"heartbeat.spec": "STORE_HEARTBEAT_SPEC",
}

// Load resolves the configuration from command line args (without the
// program name) and the process environment. Flags win over env vars.
func Load(args []string) (Config, error) {
	v := viper.New()

	fs := pflag.NewFlagSet("shop_service", pflag.ContinueOnError)
	fs.String("port", DefaultPort, "HTTP listen port")
	fs.String("database-url", "", "document store connection string (mongodb:// or postgres://)")
	fs.String("database-name", "", "document store database name")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	flagKeys := map[string]string{
		"port":          "port",
		"database.url":  "database-url",
		"database.name": "database-name",
	}
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	v.SetDefault("events.topic", DefaultEventsTopic)

	port := strings.TrimPrefix(strings.TrimSpace(v.GetString("port")), ":")
	if port == "" {
		port = DefaultPort
	}

	return Config{
		Server: ServerConfig{Port: ":" + port},
		Store: StoreConfig{
			URL:  strings.TrimSpace(v.GetString("database.url")),
			Name: strings.TrimSpace(v.GetString("database.name")),
		},
		Events: EventsConfig{
			Brokers: splitList(v.GetString("events.brokers")),
			Topic:   v.GetString("events.topic"),
		},
		Scheduler: SchedulerConfig{
			HeartbeatSpec: strings.TrimSpace(v.GetString("heartbeat.spec")),
		},
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
