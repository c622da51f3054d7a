// Package config loads typed settings from environment variables and YAML
// files.
//
// It wraps `github.com/joho/godotenv`, `github.com/caarlos0/env/v11` and
// `gopkg.in/yaml.v3`:
//
//   - Load parses the environment into a struct using `env` tags. The
//     default `.env` file is read once if present, and each configuration
//     type is parsed at most once per process.
//   - LoadFile decodes a YAML document using `yaml` tags and then overlays
//     any environment variables that are set. File-backed settings are not
//     cached.
//   - LoadEnv reads additional `.env` files before parsing.
//
// Policy and case enums from the validator packages implement
// encoding.TextUnmarshaler, so both sources accept the same spellings:
//
//	type HostSettings struct {
//	    Local policy.Policy `env:"HOST_LOCAL" yaml:"local"`
//	    Port  policy.Policy `env:"HOST_PORT" yaml:"port"`
//	}
//
//	var s HostSettings
//	if err := config.LoadFile("validators.yaml", &s); err != nil {
//	    log.Fatalf("loading settings: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – failed to parse env vars into struct.
//   - `ErrReadingFile` – the YAML file could not be read or decoded.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer` – nil pointer passed to a loader.
//
// Use `ResetCache()` to clear the cache between tests.
package config
