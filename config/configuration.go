/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures from the environment (i.e. `.env` file, environment variables and flags) using viper.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/reflection"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
	flagKeyPrefix      = "uniqueprefixforprivateflagbindingkeys123" // Has to be lower case and hopefully unique
)

// Load loads the configuration from the environment and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that environment variables will use e.g. if the prefix is "underbar", only variables starting with "UNDERBAR_" are considered.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided.
// Viper's precedence order is maintained: explicit `Set` calls, flags, environment, configuration file, key/value store and finally defaults.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.UndefinedParameter("viper session and configuration must be provided")
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not decode default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)
	linkFlagKeysToStructureKeys(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "")
	}
	return
}

// BindFlagToEnv binds a pflag to an environment variable.
// envVar is the environment variable name with or without the prefix envVarPrefix.
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	setEnvOptions(viperSession, envVarPrefix)
	shortKey, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)
	err = viperSession.BindPFlag(shortKey, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(shortKey, cleansedEnvVar)
	return
}

// ValidateEmbedded validates the structures embedded in cfg which are themselves validators.
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(Validator)
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "field [%v]", r.Type().Field(i).Name)
		}
	}
	return nil
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (shortKey string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(envVar)
	envVarPrefixLower := strings.ToLower(envVarPrefix)
	short := envVarLower
	if strings.HasPrefix(envVarLower, envVarPrefixLower) {
		short = strings.TrimPrefix(strings.TrimPrefix(envVarLower, envVarPrefixLower), EnvVarSeparator)
	}
	shortKey = fmt.Sprintf("%v%v%v", flagKeyPrefix, configKeySeparator, strings.ReplaceAll(short, EnvVarSeparator, configKeySeparator))
	cleansedEnvVar = strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("%v%v%v", envVarPrefix, EnvVarSeparator, short), configKeySeparator, EnvVarSeparator))
	return
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}

// linkFlagKeysToStructureKeys makes values bound to flags take precedence over the structured configuration values.
// Viper aliases do not work well with multi-level keys and hence, the binding is handled manually.
func linkFlagKeysToStructureKeys(viperSession *viper.Viper, envVarPrefix string) {
	keys := viperSession.AllKeys()
	for i := range keys {
		key := keys[i]
		if strings.HasPrefix(key, flagKeyPrefix) {
			continue
		}
		flagKey, _ := generateEnvVarConfigKeys(key, envVarPrefix)
		if viperSession.IsSet(flagKey) {
			viperSession.Set(key, viperSession.Get(flagKey))
			continue
		}
		value := viperSession.Get(flagKey)
		if !reflection.IsEmpty(value) && reflection.IsEmpty(viperSession.Get(key)) {
			viperSession.Set(key, value)
		}
	}
}
