package http

import (
	"regexp"

	"rfcbot/internal/service"
)

// Репозиторий задаётся слагом owner/name; регистр не нормализуется
var reRepo = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)

// ValidateRepoQuery Валидация query-параметра repo для /repos/*
func ValidateRepoQuery(repo string) error {
	if repo == "" {
		return service.ErrBadRequest("repo is required")
	}
	if !reRepo.MatchString(repo) {
		return service.ErrBadRequest("repo must match pattern owner/name, e.g. rust-lang/rfcs")
	}
	return nil
}
