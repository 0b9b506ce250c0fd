// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"github.com/caarlos0/env"
)

// Config carries the simulation dimensions. Defaults are the benchmark's
// canonical constants; the env overrides exist for ad-hoc sizing during
// development, not as a public surface.
type Config struct {
	NumMatches      int `env:"NUM_MATCHES"       envDefault:"20"    envDocs:"number of independent matches hosted by the server"`
	NumClients      int `env:"NUM_CLIENTS"       envDefault:"40"    envDocs:"number of synthetic clients, two per match"`
	InputsPerClient int `env:"INPUTS_PER_CLIENT" envDefault:"10000" envDocs:"inputs each client produces before finishing"`
	BatchSize       int `env:"BATCH_SIZE"        envDefault:"50"    envDocs:"producer batch size in pipelined mode"`
	MinThreads      int `env:"MIN_THREADS"       envDefault:"2"     envDocs:"smallest worker count in the parallel sweep"`
	MaxThreads      int `env:"MAX_THREADS"       envDefault:"8"     envDocs:"largest worker count in the parallel sweep"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TotalInputs is the number of inputs the whole client fleet produces.
func (c *Config) TotalInputs() int {
	return c.NumClients * c.InputsPerClient
}
