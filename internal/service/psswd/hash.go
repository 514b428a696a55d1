// Package psswd хеширование паролей участников через bcrypt.
package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt реализует service.PasswordHasher. Нулевое значение использует bcrypt.DefaultCost.
type Bcrypt struct {
	cost int
}

// New создает хешер с указанной стоимостью. Значения вне [bcrypt.MinCost, bcrypt.MaxCost] заменяются на
// bcrypt.DefaultCost.
func New(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{cost: cost}
}

func (b Bcrypt) HashPassword(password string) (string, error) {
	cost := b.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (b Bcrypt) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
