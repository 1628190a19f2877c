// Package policy contiene la única tabla de autorización que consulta toda operación protegida.
package policy

import (
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Action es algo que un actor puede intentar.
type Action string

const (
	RecordMovement Action = "movement:record"
	ViewMovements  Action = "movement:view"
	ViewCatalog    Action = "catalog:view"
	ManageCatalog  Action = "catalog:manage" // crear/editar/eliminar productos, categorías y proveedores
	ViewReports    Action = "report:view"
	Search         Action = "search"
	ManageUsers    Action = "user:manage"
)

// anyAuthenticated marca acciones abiertas a todo usuario autenticado, con o sin rol.
const anyAuthenticated = "*"

var table = map[Action][]string{
	RecordMovement: {entity.RoleAdmin, entity.RoleEmployee},
	ViewMovements:  {anyAuthenticated},
	ViewCatalog:    {anyAuthenticated},
	Search:         {anyAuthenticated},
	ViewReports:    {entity.RoleAdmin, entity.RoleManager},
	ManageCatalog:  {entity.RoleAdmin},
	ManageUsers:    {entity.RoleAdmin},
}

// Allowed indica si role puede realizar action. Las acciones desconocidas se niegan.
func Allowed(role string, action Action) bool {
	for _, r := range table[action] {
		if r == anyAuthenticated || r == role {
			return true
		}
	}
	return false
}

// Authorize devuelve domain.ErrUnauthorized si role no puede realizar action.
func Authorize(role string, action Action) error {
	if !Allowed(role, action) {
		return domain.ErrUnauthorized
	}
	return nil
}
