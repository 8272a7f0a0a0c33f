// Package config реализует модель конфигурации бота: запрещённые реакции,
// поведение после FCP и составы команд. Конфигурация загружается один раз
// при старте процесса и после этого не изменяется.
package config

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"slices"

	"rfcbot/internal/model"
)

// UserStore описывает единственную операцию внешнего хранилища,
// нужную для валидации команд: поиск пользователя GitHub по логину.
type UserStore interface {
	GetByLogin(ctx context.Context, login string) (model.GitHubUser, error)
}

// TeamLabel — метка, под которой команда зарегистрирована в конфигурации.
// Используется только как ключ; сравнение — точное строковое.
type TeamLabel string

// Team описывает команду: отображаемое имя, ping-группу и упорядоченный
// список логинов участников. Дубликаты в списке не схлопываются.
type Team struct {
	Name    string   `toml:"name"`
	Ping    string   `toml:"ping"`
	Members []string `toml:"members"`
}

// MemberLogins возвращает логины участников в порядке объявления.
func (t *Team) MemberLogins() []string {
	return t.Members
}

// Validate проверяет, что каждый участник существует во внешнем хранилище.
// Останавливается на первом отсутствующем логине, не накапливая ошибки;
// при каждом вызове хранилище опрашивается заново по каждому участнику.
func (t *Team) Validate(ctx context.Context, store UserStore) error {
	for _, login := range t.Members {
		if _, err := store.GetByLogin(ctx, login); err != nil {
			return fmt.Errorf("member %q: %w", login, err)
		}
	}
	return nil
}

// ReactionPolicy задаёт по одному флагу на вид реакции.
// Отсутствующее в документе поле означает «не запрещена».
type ReactionPolicy struct {
	UpVote   bool `toml:"up_vote"`
	DownVote bool `toml:"down_vote"`
	Laugh    bool `toml:"laugh"`
	Hooray   bool `toml:"hooray"`
	Confused bool `toml:"confused"`
	Heart    bool `toml:"heart"`
}

// Prohibited возвращает запрещённые реакции строго в каноническом порядке
// перечисления model.Reactions, независимо от порядка полей в документе.
func (p ReactionPolicy) Prohibited() []model.Reaction {
	out := make([]model.Reaction, 0, len(model.Reactions))
	for _, r := range model.Reactions {
		if p.prohibits(r) {
			out = append(out, r)
		}
	}
	return out
}

func (p ReactionPolicy) prohibits(r model.Reaction) bool {
	switch r {
	case model.ReactionUpvote:
		return p.UpVote
	case model.ReactionDownvote:
		return p.DownVote
	case model.ReactionLaugh:
		return p.Laugh
	case model.ReactionHooray:
		return p.Hooray
	case model.ReactionConfused:
		return p.Confused
	case model.ReactionHeart:
		return p.Heart
	}
	return false
}

// ReactionBehavior хранит пару политик реакций для репозитория:
// отдельно для issue и отдельно для комментариев.
type ReactionBehavior struct {
	Issue   ReactionPolicy `toml:"issue"`
	Comment ReactionPolicy `toml:"comment"`
}

// FcpBehavior задаёт, что бот делает с issue после завершения FCP.
// Оба поля по умолчанию false: отсутствие настройки никогда не включает
// автозакрытие или автоперенос.
type FcpBehavior struct {
	Close    bool `toml:"close"`
	Postpone bool `toml:"postpone"`
}

// Config — корень конфигурации: три таблицы, разобранные из TOML-документа.
// Идентификаторы репозиториев ("owner/name") сравниваются побайтово,
// без нормализации регистра.
type Config struct {
	ProhibitedReactions map[string]ReactionBehavior `toml:"prohibited_reactions"`
	FcpBehaviors        map[string]FcpBehavior      `toml:"fcp_behaviors"`
	Teams               map[TeamLabel]*Team         `toml:"teams"`
}

// TeamLabels итерирует метки команд в возрастающем лексикографическом порядке.
func (c *Config) TeamLabels() iter.Seq[TeamLabel] {
	return func(yield func(TeamLabel) bool) {
		for _, label := range slices.Sorted(maps.Keys(c.Teams)) {
			if !yield(label) {
				return
			}
		}
	}
}

// TeamsSorted итерирует пары (метка, команда) в возрастающем порядке меток.
func (c *Config) TeamsSorted() iter.Seq2[TeamLabel, *Team] {
	return func(yield func(TeamLabel, *Team) bool) {
		for _, label := range slices.Sorted(maps.Keys(c.Teams)) {
			if !yield(label, c.Teams[label]) {
				return
			}
		}
	}
}

// Team возвращает команду по метке.
func (c *Config) Team(label TeamLabel) (*Team, bool) {
	t, ok := c.Teams[label]
	return t, ok
}

// ShouldAutoClose сообщает, можно ли автоматически закрывать issue
// после завершения FCP в данном репозитории. Для неизвестного репозитория — false.
func (c *Config) ShouldAutoClose(repo string) bool {
	return c.FcpBehaviors[repo].Close
}

// ShouldAutoPostpone сообщает, можно ли автоматически переносить issue
// после завершения FCP в данном репозитории. Для неизвестного репозитория — false.
func (c *Config) ShouldAutoPostpone(repo string) bool {
	return c.FcpBehaviors[repo].Postpone
}

// ProhibitedIssueReactions возвращает запрещённые реакции на issue
// для репозитория. Для неизвестного репозитория — пустой список.
func (c *Config) ProhibitedIssueReactions(repo string) []model.Reaction {
	return c.ProhibitedReactions[repo].Issue.Prohibited()
}

// ProhibitedCommentReactions возвращает запрещённые реакции на комментарии
// для репозитория. Для неизвестного репозитория — пустой список.
func (c *Config) ProhibitedCommentReactions(repo string) []model.Reaction {
	return c.ProhibitedReactions[repo].Comment.Prohibited()
}

// Validate проверяет все команды по внешнему хранилищу пользователей.
// Команды обходятся в возрастающем порядке меток, поэтому при нескольких
// проблемных командах сообщение об ошибке детерминировано. Первый же
// отсутствующий участник фатален: частично валидная конфигурация не принимается.
func (c *Config) Validate(ctx context.Context, store UserStore) error {
	for label, team := range c.TeamsSorted() {
		if err := team.Validate(ctx, store); err != nil {
			return fmt.Errorf("team %q: %w", label, err)
		}
	}
	return nil
}
