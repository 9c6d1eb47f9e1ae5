// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Careersphere Authors

package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] is usable at startup.
// All violations are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("%w: bcrypt cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs))
	} else if cfg.Storage.DB.Driver() == "" {
		errs = append(errs, fmt.Errorf("%w: unsupported database uri scheme", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs))
	}

	if cfg.Adapter.GeminiAPIKey == "" {
		errs = append(errs, fmt.Errorf("%w: gemini api key is required", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.GeminiModel == "" {
		errs = append(errs, fmt.Errorf("%w: gemini model is required", ErrInvalidAdapterConfigs))
	}
	if u, err := url.Parse(cfg.Adapter.GeminiBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: gemini base url must be absolute", ErrInvalidAdapterConfigs))
	}
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidAdapterConfigs))
	}

	return errors.Join(errs...)
}
