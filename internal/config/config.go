package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config — параметры подключения к S3-совместимому хранилищу.
// Кредов здесь нет и не будет: их SDK берёт сам из окружения
// (AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY, shared config, IAM-роль).
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Secure    bool   `yaml:"secure"`
	PathStyle bool   `yaml:"path_style"`
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("не удалось определить домашний каталог: %w", err)
	}
	return filepath.Join(home, ".apkup", "config.yaml"), nil
}

func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// без конфига работаем на дефолтах AWS
			return &Config{}, nil
		}
		return nil, fmt.Errorf("не удалось прочитать конфиг %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("повреждён конфиг %q: %w", path, err)
	}
	return &cfg, nil
}
