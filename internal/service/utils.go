package service

import (
	"fmt"

	"github.com/fsdevblog/tradecredit/internal/domain"
	"github.com/fsdevblog/tradecredit/internal/repository/repoargs"
	"github.com/fsdevblog/tradecredit/pkg/uow"
)

// requireRole возвращает ошибку *domain.ForbiddenError, если роль участника не совпадает с role.
func requireRole(actor domain.Actor, role domain.RoleType) error {
	if actor.Role != role {
		return domain.NewForbiddenError(fmt.Sprintf("only %s can perform this action", role))
	}
	return nil
}

// txRepo достает репозиторий из транзакции uow и приводит его к типу T.
func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name)) //nolint:wrapcheck
}

// requireRetailer проверяет, что участник с указанным id существует и является ритейлером. Иначе возвращает
// *domain.ValidationError по полю field.
func requireRetailer(party *domain.Party, err error, field string) error {
	if err != nil {
		if isNotFound(err) {
			return domain.NewValidationError(field, "retailer not found")
		}
		return err
	}
	if party.Role != domain.RoleRetailer {
		return domain.NewValidationError(field, "party is not a retailer")
	}
	return nil
}
