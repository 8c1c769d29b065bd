package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the settings the API process needs
func (c *Config) Validate() error {
	if err := c.validateTags(); err != nil {
		return err
	}

	var errs []error
	if c.Server.APIKey == "" {
		errs = append(errs, errors.New("server.api_key (API_KEY) must be set for security"))
	}
	if c.Telegram.Enabled && c.Telegram.Token == "" {
		errs = append(errs, errors.New("telegram.token is required when telegram is enabled"))
	}
	if (c.Kalshi.APIKeyID == "") != (c.Kalshi.PrivateKey == "") {
		errs = append(errs, errors.New("kalshi.api_key_id and kalshi.private_key must be set together"))
	}
	if err := c.Scoring.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("scoring: %w", err))
	}
	return errors.Join(errs...)
}

// ValidateDiscord checks the settings the Discord bot process needs. It
// talks to the API over HTTP, so the database section is not required.
func (c *Config) ValidateDiscord() error {
	var errs []error
	if c.Discord.Token == "" {
		errs = append(errs, errors.New("discord.token (DISCORD_TOKEN) is required"))
	}
	if c.Discord.AppID == "" {
		errs = append(errs, errors.New("discord.app_id (DISCORD_APP_ID) is required"))
	}
	if c.Discord.APIURL == "" {
		errs = append(errs, errors.New("discord.api_url (API_URL) is required"))
	}
	if c.Server.APIKey == "" {
		errs = append(errs, errors.New("server.api_key (API_KEY) is required to call the API"))
	}
	if err := validate.Var(c.Discord.APIURL, "omitempty,url"); err != nil {
		errs = append(errs, fmt.Errorf("discord.api_url: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) validateTags() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		// Config.Database.Port -> Database.Port
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		msgs = append(msgs, fmt.Sprintf("%s failed %s", field, tagWithParam(e)))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func tagWithParam(e validator.FieldError) string {
	if e.Param() == "" {
		return e.Tag()
	}
	return e.Tag() + "=" + e.Param()
}

// Warnings reports settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string
	if c.Database.Password == ExampleDBPassword {
		warnings = append(warnings, WarnExampleDBPassword)
	}
	if c.Server.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnExampleAPIKey)
	}
	if c.Environment == "production" && c.Database.Password == DefaultDBPassword {
		warnings = append(warnings, WarnDefaultDBPassword)
	}
	if !c.KalshiEnabled() {
		warnings = append(warnings, WarnNoKalshi)
	}
	if c.Redis.URL == "" {
		warnings = append(warnings, WarnNoRedis)
	}
	return warnings
}
