// Package service содержит бизнес-слой поверх загруженной конфигурации бота.
package service

import (
	"fmt"

	"rfcbot/internal/config"
	"rfcbot/internal/model"
)

// Сущности, для которых действуют политики реакций.
const (
	EntityIssue   = "issue"
	EntityComment = "comment"
)

// ConfigService отвечает на запросы к неизменяемой конфигурации бота.
// Все операции читающие и безошибочные на уровне домена; AppError
// возникает только из некорректных параметров запроса.
type ConfigService struct {
	cfg *config.Config
}

// NewConfigService создаёт сервис поверх загруженной конфигурации.
func NewConfigService(cfg *config.Config) *ConfigService {
	return &ConfigService{cfg: cfg}
}

// TeamLabels возвращает все метки команд в возрастающем порядке.
func (s *ConfigService) TeamLabels() []config.TeamLabel {
	labels := make([]config.TeamLabel, 0)
	for label := range s.cfg.TeamLabels() {
		labels = append(labels, label)
	}
	return labels
}

// Team возвращает команду по метке.
func (s *ConfigService) Team(label string) (*config.Team, error) {
	if label == "" {
		return nil, ErrBadRequest("label is required")
	}
	team, ok := s.cfg.Team(config.TeamLabel(label))
	if !ok {
		return nil, ErrNotFound("team not found")
	}
	return team, nil
}

// Behavior возвращает настройки поведения после FCP для репозитория.
// Неизвестный репозиторий — не ошибка: оба флага false.
func (s *ConfigService) Behavior(repo string) (config.FcpBehavior, error) {
	if repo == "" {
		return config.FcpBehavior{}, ErrBadRequest("repo is required")
	}
	return config.FcpBehavior{
		Close:    s.cfg.ShouldAutoClose(repo),
		Postpone: s.cfg.ShouldAutoPostpone(repo),
	}, nil
}

// ProhibitedReactions возвращает запрещённые реакции для репозитория
// и сущности (issue или comment). Неизвестный репозиторий — пустой список.
func (s *ConfigService) ProhibitedReactions(repo, entity string) ([]model.Reaction, error) {
	if repo == "" {
		return nil, ErrBadRequest("repo is required")
	}
	switch entity {
	case EntityIssue:
		return s.cfg.ProhibitedIssueReactions(repo), nil
	case EntityComment:
		return s.cfg.ProhibitedCommentReactions(repo), nil
	default:
		return nil, ErrBadRequest(fmt.Sprintf("entity must be %q or %q", EntityIssue, EntityComment))
	}
}
