package repoargs

import "github.com/fsdevblog/tradecredit/internal/domain"

type CreateParty struct {
	Email        string
	PasswordHash string
	FirstName    string
	Role         domain.RoleType
	BusinessName string
	Phone        string
	GSTNumber    string
	Address      string
}
