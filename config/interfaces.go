package config

// IServiceConfiguration defines a configuration which can be loaded and validated.
type IServiceConfiguration interface {
	// Validates configuration entries.
	Validate() error
}

// Validator is an alias of IServiceConfiguration for structures which can only be validated.
type Validator = IServiceConfiguration
