// Package profile stores named connection strings for snapshot databases.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "scenelint"
	configFileName = "profiles.yaml"
)

var configDirFunc = configDir

type Profile struct {
	Name    string `yaml:"name"`
	ConnStr string `yaml:"conn_str"`
}

type Config struct {
	Default  string    `yaml:"default,omitempty"`
	Profiles []Profile `yaml:"profiles"`
}

func (c *Config) index(name string) int {
	for i, p := range c.Profiles {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func Resolve(name string) (string, error) {
	cfg, err := load()
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no profiles configured")
		}
		return "", err
	}

	i := cfg.index(name)
	if i < 0 {
		return "", fmt.Errorf("profile %q not found", name)
	}
	return cfg.Profiles[i].ConnStr, nil
}

func List() ([]Profile, error) {
	cfg, err := loadOrEmpty()
	if err != nil {
		return nil, err
	}
	return cfg.Profiles, nil
}

func Add(name, connStr string) error {
	if name == "" {
		return fmt.Errorf("profile name is required")
	}
	cfg, err := loadOrEmpty()
	if err != nil {
		return err
	}

	if i := cfg.index(name); i >= 0 {
		cfg.Profiles[i].ConnStr = connStr
	} else {
		cfg.Profiles = append(cfg.Profiles, Profile{Name: name, ConnStr: connStr})
	}
	return save(cfg)
}

func Remove(name string) error {
	cfg, err := load()
	if err != nil {
		return err
	}

	i := cfg.index(name)
	if i < 0 {
		return fmt.Errorf("profile %q not found", name)
	}
	cfg.Profiles = append(cfg.Profiles[:i], cfg.Profiles[i+1:]...)
	if cfg.Default == name {
		cfg.Default = ""
	}
	return save(cfg)
}

// ResolveConnStr picks the connection for db: snapshot references. An
// explicit connection string wins over a named profile, which wins over the
// default profile.
func ResolveConnStr(db, profileName string) (string, error) {
	if db != "" {
		return db, nil
	}
	if profileName != "" {
		return Resolve(profileName)
	}

	cfg, err := loadOrEmpty()
	if err != nil {
		return "", err
	}
	if cfg.Default != "" {
		return Resolve(cfg.Default)
	}

	return "", nil
}

func GetDefault() (string, error) {
	cfg, err := loadOrEmpty()
	if err != nil {
		return "", err
	}
	return cfg.Default, nil
}

func SetDefault(name string) error {
	cfg, err := loadOrEmpty()
	if err != nil {
		return err
	}
	if cfg.index(name) < 0 {
		return fmt.Errorf("profile %q not found", name)
	}

	cfg.Default = name
	return save(cfg)
}

func ClearDefault() error {
	cfg, err := load()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cfg.Default = ""
	return save(cfg)
}

func load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profiles %s: %w", path, err)
	}

	return &cfg, nil
}

// loadOrEmpty treats a missing profiles file as an empty one.
func loadOrEmpty() (*Config, error) {
	cfg, err := load()
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func configPath() (string, error) {
	dir, err := configDirFunc()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func save(cfg *Config) error {
	dir, err := configDirFunc()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling profiles: %w", err)
	}

	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing profiles %s: %w", path, err)
	}

	return nil
}
