// Package mocks содержит моки внешних зависимостей пакета config.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rfcbot/internal/model"
)

// UserStore — мок хранилища пользователей GitHub для тестов валидации.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByLogin(ctx context.Context, login string) (model.GitHubUser, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(model.GitHubUser), args.Error(1)
}
