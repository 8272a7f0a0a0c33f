package config

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Parse разбирает TOML-документ конфигурации. Все три верхнеуровневые
// секции опциональны: отсутствующая секция эквивалентна пустой.
// Повторное определение ключа (например, два блока [teams.avengers])
// отвергается декодером как структурный конфликт.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Load читает файл конфигурации, разбирает его и валидирует команды по
// внешнему хранилищу пользователей. Вызывается ровно один раз при старте
// процесса; любая ошибка фатальна для запуска. Полученный *Config
// неизменяем и передаётся потребителям по ссылке.
func Load(ctx context.Context, path string, store UserStore) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(ctx, store); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
