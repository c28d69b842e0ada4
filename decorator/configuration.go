/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package decorator

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-underbar/config"
)

const (
	DefaultEnvVarPrefix = "underbar"
	DefaultThrottleWait = 100 * time.Millisecond
	DefaultVerbosity    = 1
)

// Configuration defines the settings of the decorators which can be loaded from the environment.
type Configuration struct {
	ThrottleWait time.Duration `mapstructure:"throttle_wait"`
	Leading      bool          `mapstructure:"leading"`
	Trailing     bool          `mapstructure:"trailing"`
	Verbosity    int           `mapstructure:"verbosity"`
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.ThrottleWait, validation.Min(time.Duration(0))),
		validation.Field(&cfg.Verbosity, validation.Min(0)),
	)
}

// DefaultConfiguration returns the default settings: throttled functions are invoked on both edges of the wait window.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		ThrottleWait: DefaultThrottleWait,
		Leading:      true,
		Trailing:     true,
		Verbosity:    DefaultVerbosity,
	}
}

// LoadConfiguration loads the configuration from the environment e.g. `UNDERBAR_THROTTLE_WAIT=1s` if envVarPrefix is `underbar`.
// Settings missing from the environment take their default value.
func LoadConfiguration(envVarPrefix string) (cfg *Configuration, err error) {
	cfg = &Configuration{}
	err = config.Load(envVarPrefix, cfg, DefaultConfiguration())
	if err != nil {
		cfg = nil
	}
	return
}

var _ config.IServiceConfiguration = &Configuration{}
