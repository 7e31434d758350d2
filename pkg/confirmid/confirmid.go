// Package confirmid генерирует внешние идентификаторы подтверждения брони.
package confirmid

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "RSV-"

// Generator генератор confirmation id
type Generator struct{}

// New создает новый генератор
func New() *Generator {
	return &Generator{}
}

// NewConfirmationID возвращает новый уникальный идентификатор вида "RSV-3F9A21C4"
func (g *Generator) NewConfirmationID() string {
	id := uuid.NewString()
	return prefix + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
