package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cpu-scheduler/internal/core"
)

type SchedulerConfig struct {
	Port                          int
	LogLevel                      string
	LogFormat                     string
	DBPath                        string // empty disables run history
	RoundRobinTimeQuantum         int
	PriorityRoundRobinTimeQuantum int
	MaxProcesses                  int
	MaxTime                       int // latest instant a schedule may reach
}

const envPrefix = "CPUSCHED"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.path", "")
	v.SetDefault("scheduler.round_robin.time_quantum", 3)
	v.SetDefault("scheduler.priority_round_robin.time_quantum", 3)
	v.SetDefault("scheduler.limits.max_processes", core.DefaultMaxProcesses)
	v.SetDefault("scheduler.limits.max_time", core.DefaultMaxTime)
}

// Load reads the configuration. With an empty path it looks for config.yaml in
// the working directory and falls back to defaults when there is none; an
// explicit path must exist. Environment variables prefixed with CPUSCHED_
// override file values (CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM, ...).
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                          v.GetInt("port"),
		LogLevel:                      v.GetString("log.level"),
		LogFormat:                     v.GetString("log.format"),
		DBPath:                        v.GetString("database.path"),
		RoundRobinTimeQuantum:         v.GetInt("scheduler.round_robin.time_quantum"),
		PriorityRoundRobinTimeQuantum: v.GetInt("scheduler.priority_round_robin.time_quantum"),
		MaxProcesses:                  v.GetInt("scheduler.limits.max_processes"),
		MaxTime:                       v.GetInt("scheduler.limits.max_time"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the configuration used when no file or environment is present.
func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Port:                          9095,
		LogLevel:                      "info",
		LogFormat:                     "text",
		RoundRobinTimeQuantum:         3,
		PriorityRoundRobinTimeQuantum: 3,
		MaxProcesses:                  core.DefaultMaxProcesses,
		MaxTime:                       core.DefaultMaxTime,
	}
}

// Limits returns the process set bounds for the simulator.
func (c *SchedulerConfig) Limits() core.Limits {
	return core.Limits{MaxProcesses: c.MaxProcesses, MaxTime: c.MaxTime}
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.PriorityRoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: scheduler.priority_round_robin.time_quantum must be positive, got %d", c.PriorityRoundRobinTimeQuantum)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("config: scheduler.limits.max_processes must be positive, got %d", c.MaxProcesses)
	}
	if c.MaxTime <= 0 {
		return fmt.Errorf("config: scheduler.limits.max_time must be positive, got %d", c.MaxTime)
	}
	return nil
}
