package config_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rfcbot/internal/config"
	"rfcbot/internal/config/mocks"
	"rfcbot/internal/model"
	"rfcbot/internal/repository"
)

const testDocument = `
[prohibited_reactions]

[prohibited_reactions."foo-org/bar".issue]
down_vote = true
confused = true

[prohibited_reactions."foo-org/bar".comment]
down_vote = true
confused = false

[fcp_behaviors]

[fcp_behaviors."rust-lang/alpha"]
close = true
postpone = true

[fcp_behaviors."foobar/beta"]
close = false

[fcp_behaviors."bazquux/gamma"]
postpone = false

[fcp_behaviors."wibble/epsilon"]

[teams]

[teams.avengers]
name = "The Avengers"
ping = "marvel/avengers"
members = [
  "hulk",
  "thor",
  "thevision",
  "blackwidow",
  "spiderman",
  "captainamerica",
]

[teams.justice-league]
name = "Justice League of America"
ping = "dc-comics/justice-league"
members = [
  "superman",
  "wonderwoman",
  "aquaman",
  "batman",
  "theflash"
]
`

func TestParse_Document(t *testing.T) {
	cfg, err := config.Parse([]byte(testDocument))
	require.NoError(t, err)

	// Метки команд — в возрастающем порядке, независимо от порядка объявления
	labels := slices.Collect(cfg.TeamLabels())
	assert.Equal(t, []config.TeamLabel{"avengers", "justice-league"}, labels)

	// Составы команд — в порядке объявления
	avengers, ok := cfg.Team("avengers")
	require.True(t, ok)
	assert.Equal(t, "The Avengers", avengers.Name)
	assert.Equal(t, "marvel/avengers", avengers.Ping)
	assert.Equal(t,
		[]string{"hulk", "thor", "thevision", "blackwidow", "spiderman", "captainamerica"},
		avengers.MemberLogins())

	jla, ok := cfg.Team("justice-league")
	require.True(t, ok)
	assert.Equal(t,
		[]string{"superman", "wonderwoman", "aquaman", "batman", "theflash"},
		jla.MemberLogins())

	// Несуществующая команда
	_, ok = cfg.Team("random")
	assert.False(t, ok)

	// Итерация пар повторяема и согласована с TeamLabels
	var paired []config.TeamLabel
	for label, team := range cfg.TeamsSorted() {
		require.NotNil(t, team)
		paired = append(paired, label)
	}
	assert.Equal(t, labels, paired)

	// Поведение после FCP
	assert.True(t, cfg.ShouldAutoClose("rust-lang/alpha"))
	assert.True(t, cfg.ShouldAutoPostpone("rust-lang/alpha"))
	assert.False(t, cfg.ShouldAutoClose("foobar/beta"))
	assert.False(t, cfg.ShouldAutoPostpone("foobar/beta"))
	assert.False(t, cfg.ShouldAutoClose("bazquux/gamma"))
	assert.False(t, cfg.ShouldAutoPostpone("bazquux/gamma"))

	// Секция репозитория без полей эквивалентна отсутствующей
	assert.False(t, cfg.ShouldAutoClose("wibble/epsilon"))
	assert.False(t, cfg.ShouldAutoPostpone("wibble/epsilon"))
	assert.False(t, cfg.ShouldAutoClose("random"))
	assert.False(t, cfg.ShouldAutoPostpone("random"))

	// Запрещённые реакции — в каноническом порядке перечисления
	assert.Equal(t,
		[]model.Reaction{model.ReactionDownvote, model.ReactionConfused},
		cfg.ProhibitedIssueReactions("foo-org/bar"))
	assert.Equal(t,
		[]model.Reaction{model.ReactionDownvote},
		cfg.ProhibitedCommentReactions("foo-org/bar"))

	// Неизвестный репозиторий — пустые списки, не ошибка
	assert.Empty(t, cfg.ProhibitedIssueReactions("random"))
	assert.Empty(t, cfg.ProhibitedCommentReactions("random"))
}

func TestParse_EmptyAndMissingSections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "Empty document", doc: ""},
		{name: "Empty sections", doc: "[prohibited_reactions]\n[fcp_behaviors]\n[teams]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.doc))
			require.NoError(t, err)

			assert.Empty(t, slices.Collect(cfg.TeamLabels()))
			assert.False(t, cfg.ShouldAutoClose("rust-lang/rust"))
			assert.False(t, cfg.ShouldAutoPostpone("rust-lang/rust"))
			assert.Empty(t, cfg.ProhibitedIssueReactions("rust-lang/rust"))
			assert.Empty(t, cfg.ProhibitedCommentReactions("rust-lang/rust"))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "Malformed document",
			doc:  "[teams\nmembers = [",
		},
		{
			name: "Type mismatch",
			doc:  "[teams.avengers]\nmembers = \"hulk\"\n",
		},
		{
			name: "Duplicate team block",
			doc:  "[teams.avengers]\nmembers = [\"hulk\"]\n[teams.avengers]\nmembers = [\"thor\"]\n",
		},
		{
			name: "Non-boolean reaction flag",
			doc:  "[prohibited_reactions.\"foo/bar\".issue]\ndown_vote = \"yes\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestReactionPolicy_Prohibited(t *testing.T) {
	tests := []struct {
		name   string
		policy config.ReactionPolicy
		want   []model.Reaction
	}{
		{
			name:   "All allowed by default",
			policy: config.ReactionPolicy{},
			want:   []model.Reaction{},
		},
		{
			name: "All prohibited: canonical order",
			policy: config.ReactionPolicy{
				UpVote: true, DownVote: true, Laugh: true,
				Hooray: true, Confused: true, Heart: true,
			},
			want: []model.Reaction{
				model.ReactionUpvote, model.ReactionDownvote, model.ReactionLaugh,
				model.ReactionHooray, model.ReactionConfused, model.ReactionHeart,
			},
		},
		{
			name:   "Subset keeps canonical order",
			policy: config.ReactionPolicy{Confused: true, DownVote: true},
			want:   []model.Reaction{model.ReactionDownvote, model.ReactionConfused},
		},
		{
			name:   "Single flag",
			policy: config.ReactionPolicy{Heart: true},
			want:   []model.Reaction{model.ReactionHeart},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Prohibited())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	doc := `
[teams.avengers]
members = ["hulk", "thor", "thevision"]
`
	storeErr := errors.New("connection reset")

	tests := []struct {
		name       string
		setupMocks func(store *mocks.UserStore)
		wantErr    bool
		errSubstr  string
		errIs      error
	}{
		{
			name: "Success: all members exist",
			setupMocks: func(store *mocks.UserStore) {
				store.On("GetByLogin", mock.Anything, "hulk").Return(model.GitHubUser{ID: 1, Login: "hulk"}, nil)
				store.On("GetByLogin", mock.Anything, "thor").Return(model.GitHubUser{ID: 2, Login: "thor"}, nil)
				store.On("GetByLogin", mock.Anything, "thevision").Return(model.GitHubUser{ID: 3, Login: "thevision"}, nil)
			},
		},
		{
			name: "Fail: missing member short-circuits",
			setupMocks: func(store *mocks.UserStore) {
				store.On("GetByLogin", mock.Anything, "hulk").Return(model.GitHubUser{ID: 1, Login: "hulk"}, nil)
				store.On("GetByLogin", mock.Anything, "thor").Return(model.GitHubUser{}, repository.ErrUserNotFound)
				// thevision запрашиваться не должен
			},
			wantErr:   true,
			errSubstr: `"thor"`,
			errIs:     repository.ErrUserNotFound,
		},
		{
			name: "Fail: store error is wrapped",
			setupMocks: func(store *mocks.UserStore) {
				store.On("GetByLogin", mock.Anything, "hulk").Return(model.GitHubUser{}, storeErr)
			},
			wantErr:   true,
			errSubstr: `"hulk"`,
			errIs:     storeErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(doc))
			require.NoError(t, err)

			store := new(mocks.UserStore)
			tt.setupMocks(store)

			err = cfg.Validate(context.Background(), store)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				assert.Contains(t, err.Error(), `"avengers"`)
				assert.ErrorIs(t, err, tt.errIs)
				store.AssertNotCalled(t, "GetByLogin", mock.Anything, "thevision")
			} else {
				assert.NoError(t, err)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestConfig_ValidateOrder(t *testing.T) {
	// Команды проверяются в возрастающем порядке меток: первая ошибка
	// детерминированно приходит из лексикографически меньшей команды
	doc := `
[teams.zulu]
members = ["ghost"]

[teams.alpha]
members = ["phantom"]
`
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	store := new(mocks.UserStore)
	store.On("GetByLogin", mock.Anything, "phantom").Return(model.GitHubUser{}, repository.ErrUserNotFound)

	err = cfg.Validate(context.Background(), store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"alpha"`)
	assert.Contains(t, err.Error(), `"phantom"`)
	store.AssertNotCalled(t, "GetByLogin", mock.Anything, "ghost")
	store.AssertExpectations(t)
}

func TestTeam_ValidateRequeriesStore(t *testing.T) {
	// Validate не кэширует результаты: каждый вызов заново опрашивает
	// хранилище по каждому участнику
	doc := `
[teams.lang]
members = ["niko", "niko"]
`
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	team, ok := cfg.Team("lang")
	require.True(t, ok)
	assert.Equal(t, []string{"niko", "niko"}, team.MemberLogins())

	store := new(mocks.UserStore)
	store.On("GetByLogin", mock.Anything, "niko").Return(model.GitHubUser{ID: 7, Login: "niko"}, nil).Times(4)

	require.NoError(t, team.Validate(context.Background(), store))
	require.NoError(t, team.Validate(context.Background(), store))
	store.AssertExpectations(t)
}
