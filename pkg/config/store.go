package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/arthur-debert/rooconf/pkg/logging"
	"github.com/arthur-debert/rooconf/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables overriding config keys
const EnvPrefix = "ROO_CONF_"

// EnvKey returns the environment variable overriding key
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// Store reads and writes the configuration file
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a store for the config file at path
func NewStore(fs types.FS, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the config file
func (s *Store) Path() string {
	return s.path
}

// Load reads defaults, the config file and environment overrides and
// decodes them into a Config. A missing file is not an error.
func (s *Store) Load() (*Config, error) {
	k, err := s.layered()
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	return &cfg, nil
}

// All returns every effective key and value, including defaults and
// environment overrides.
func (s *Store) All() (map[string]interface{}, error) {
	k, err := s.layered()
	if err != nil {
		return nil, err
	}
	return k.Raw(), nil
}

// Get returns the effective value of key
func (s *Store) Get(key string) (interface{}, bool, error) {
	k, err := s.layered()
	if err != nil {
		return nil, false, err
	}
	if !k.Exists(key) {
		return nil, false, nil
	}
	return k.Get(key), true, nil
}

// Set stores value under key and rewrites the whole file
func (s *Store) Set(key string, value interface{}) error {
	logger := logging.GetLogger("config.store")

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New(errors.ErrInvalidInput, "configuration key must not be empty")
	}

	values, err := s.readFile()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "    ")
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode configuration")
	}
	data = append(data, '\n')

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create config directory %s", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", s.path)
	}

	logger.Info().Str("key", key).Interface("value", value).Str("path", s.path).Msg("Configuration updated")
	return nil
}

// readFile returns the file layer only, as a flat map
func (s *Store) readFile() (map[string]interface{}, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]interface{}{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", s.path)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return map[string]interface{}{}, nil
	}

	values, err := koanfjson.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", s.path)
	}
	return values, nil
}

func (s *Store) layered() (*koanf.Koanf, error) {
	logger := logging.GetLogger("config.store")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanfjson.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	data, err := s.fs.ReadFile(s.path)
	switch {
	case err == nil && len(strings.TrimSpace(string(data))) > 0:
		if err := k.Load(&rawBytesProvider{bytes: data}, koanfjson.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", s.path)
		}
	case err != nil && !os.IsNotExist(err):
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", s.path)
	default:
		logger.Debug().Str("path", s.path).Msg("No config file, using defaults")
	}

	// 3. Environment overrides for known keys; empty values are ignored
	known := make(map[string]bool)
	for _, key := range KnownKeys() {
		known[key] = true
	}
	err = k.Load(env.ProviderWithValue(EnvPrefix, ".", func(name, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
		if !known[key] || value == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return k, nil
}
