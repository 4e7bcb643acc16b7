package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// Ресурсы не найдены
	ErrMatchNotFound      = errors.New("match not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Ошибки валидации и бизнес-правил
	ErrValidation      = errors.New("validation failed")
	ErrMatchDateTooOld = errors.New("cannot create a match more than 5 minutes in the past")
)
