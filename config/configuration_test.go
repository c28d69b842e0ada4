package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-underbar/commonerrors"
	"github.com/ARM-software/golang-underbar/commonerrors/errortest"
)

type nestedConfiguration struct {
	Limit int `mapstructure:"limit"`
}

func (cfg *nestedConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Limit, validation.Min(0)),
	)
}

type dummyConfiguration struct {
	Name   string              `mapstructure:"name"`
	Wait   time.Duration       `mapstructure:"wait"`
	Nested nestedConfiguration `mapstructure:"nested"`
}

func (cfg *dummyConfiguration) Validate() error {
	err := ValidateEmbedded(cfg)
	if err != nil {
		return err
	}
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Name, validation.Required),
		validation.Field(&cfg.Wait, validation.Min(time.Duration(0))),
	)
}

func defaultDummyConfiguration() *dummyConfiguration {
	return &dummyConfiguration{
		Name: "default",
		Wait: time.Second,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := &dummyConfiguration{}
	require.NoError(t, Load("underbartest1", cfg, defaultDummyConfiguration()))
	assert.Equal(t, "default", cfg.Name)
	assert.Equal(t, time.Second, cfg.Wait)
	assert.Zero(t, cfg.Nested.Limit)
}

func TestLoadFromEnvironment(t *testing.T) {
	name := faker.Word()
	t.Setenv("UNDERBARTEST2_NAME", name)
	t.Setenv("UNDERBARTEST2_WAIT", "250ms")
	t.Setenv("UNDERBARTEST2_NESTED_LIMIT", "12")
	cfg := &dummyConfiguration{}
	require.NoError(t, Load("underbartest2", cfg, defaultDummyConfiguration()))
	assert.Equal(t, name, cfg.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Wait)
	assert.Equal(t, 12, cfg.Nested.Limit)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("UNDERBARTEST3_NESTED_LIMIT", "-1")
	cfg := &dummyConfiguration{}
	err := Load("underbartest3", cfg, defaultDummyConfiguration())
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	err = Load("underbartest4", &dummyConfiguration{}, &dummyConfiguration{})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)

	err = LoadFromViper(nil, "underbartest4", cfg, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestBindFlagToEnv(t *testing.T) {
	prefix := "underbartest5"
	name := fmt.Sprintf("flag-%v", faker.Word())
	session := viper.New()
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("name", "", "name")
	require.NoError(t, flagSet.Set("name", name))
	require.NoError(t, BindFlagToEnv(session, prefix, "UNDERBARTEST5_NAME", flagSet.Lookup("name")))

	cfg := &dummyConfiguration{}
	require.NoError(t, LoadFromViper(session, prefix, cfg, defaultDummyConfiguration()))
	assert.Equal(t, name, cfg.Name)
	_, found := os.LookupEnv("UNDERBARTEST5_NAME")
	assert.False(t, found)
}
