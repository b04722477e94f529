// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/netip"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Backend.Endpoint) == "" || strings.TrimSpace(cfg.Backend.ProjectID) == "" {
		return ErrInvalidBackendConfigs
	}

	if err := cfg.Storage.validate(cfg.Backend); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.RateLimitRPS <= 0 {
		return ErrInvalidServerConfigs
	}
	if _, err := ParseTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if len(cfg.Guard.ProtectedPrefixes) == 0 || len(cfg.Guard.AuthOnlyPrefixes) == 0 {
		return ErrInvalidGuardConfigs
	}
	for _, prefix := range append(cfg.Guard.ProtectedPrefixes, cfg.Guard.AuthOnlyPrefixes...) {
		if !strings.HasPrefix(prefix, "/") {
			return fmt.Errorf("%w: prefix %q must start with /", ErrInvalidGuardConfigs, prefix)
		}
	}

	if cfg.Workers.ExpiryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Storage) validate(backend Backend) error {
	switch s.Driver {
	case DriverBackend:
		if backend.DatabaseID == "" || backend.JobsCollectionID == "" || backend.ReviewsCollectionID == "" {
			return fmt.Errorf("%w: backend driver needs database and collection ids", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	switch s.Files.Driver {
	case DriverBackend:
		if backend.BucketID == "" {
			return fmt.Errorf("%w: backend file driver needs a bucket id", ErrInvalidStorageConfigs)
		}
	case DriverS3:
		if s.Files.S3.Bucket == "" || s.Files.S3.Region == "" {
			return fmt.Errorf("%w: s3 file driver needs bucket and region", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown file driver %q", ErrInvalidStorageConfigs, s.Files.Driver)
	}

	return nil
}

// ParseTrustedProxies turns IPs and CIDRs into prefixes. A bare IP becomes
// a single-address prefix.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}
