// Package config loads the YAML scenario files used by the ndarray demo CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTrials    = 1
	DefaultColumn    = 1
	DefaultAllocator = AllocatorHeap
	DefaultPoolSize  = 4
)

// Allocator kinds understood by the CLI.
const (
	AllocatorHeap = "heap"
	AllocatorPool = "pool"
)

// DefaultExtents is the shape of the speed scenario.
var DefaultExtents = []int{5000, 4000}

var (
	ErrNoExtents        = errors.New("config: extents must not be empty")
	ErrBadExtent        = errors.New("config: extents must be > 0")
	ErrBadTrials        = errors.New("config: trials must be > 0")
	ErrBadColumn        = errors.New("config: column outside dimension 0")
	ErrUnknownAllocator = errors.New("config: unknown allocator")
)

// Config describes one speed scenario.
type Config struct {
	Extents   []int  `yaml:"extents"`
	Trials    int    `yaml:"trials"`
	Column    int    `yaml:"column"`
	Allocator string `yaml:"allocator"`
	PoolSize  int    `yaml:"pool_size"`
	Plot      bool   `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Extents:   append([]int(nil), DefaultExtents...),
		Trials:    DefaultTrials,
		Column:    DefaultColumn,
		Allocator: DefaultAllocator,
		PoolSize:  DefaultPoolSize,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the scenario before any array is allocated.
func (c *Config) Validate() error {
	if len(c.Extents) == 0 {
		return ErrNoExtents
	}
	for i, e := range c.Extents {
		if e <= 0 {
			return fmt.Errorf("dimension %d = %d: %w", i+1, e, ErrBadExtent)
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials = %d: %w", c.Trials, ErrBadTrials)
	}
	if c.Column < 0 || c.Column >= c.Extents[0] {
		return fmt.Errorf("column %d, extent %d: %w", c.Column, c.Extents[0], ErrBadColumn)
	}
	switch c.Allocator {
	case AllocatorHeap, AllocatorPool:
	default:
		return fmt.Errorf("%q: %w", c.Allocator, ErrUnknownAllocator)
	}

	return nil
}
