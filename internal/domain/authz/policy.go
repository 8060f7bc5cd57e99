// Package authz implementa la puerta de autorización: una tabla de política
// cerrada que decide si un rol puede ejecutar una acción sobre un recurso.
// Sin efectos secundarios; un rol o acción desconocido siempre deniega.
package authz

// Role identifica el rol de un actor. Conjunto cerrado: cualquier otro valor
// se trata como desconocido y la política deniega.
type Role int

const (
	RoleUnknown    Role = 0
	RoleBoutiquier Role = 1
	RoleAdmin      Role = 2
)

// String devuelve el nombre legible del rol.
func (r Role) String() string {
	switch r {
	case RoleBoutiquier:
		return "boutiquier"
	case RoleAdmin:
		return "admin"
	default:
		return "desconocido"
	}
}

// Action es una operación autorizable sobre un recurso.
type Action string

const (
	ActionView        Action = "view"
	ActionViewAny     Action = "viewAny"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionRestore     Action = "restore"
	ActionForceDelete Action = "forceDelete"
)

// Resource es el tipo de recurso sobre el que se autoriza.
type Resource string

const ResourceArticle Resource = "articles"

// policy es la tabla de política. Restore y forceDelete son solo de admin;
// el resto del CRUD lo comparten boutiquier y admin.
var policy = map[Resource]map[Action]map[Role]bool{
	ResourceArticle: {
		ActionView:        {RoleBoutiquier: true, RoleAdmin: true},
		ActionViewAny:     {RoleBoutiquier: true, RoleAdmin: true},
		ActionCreate:      {RoleBoutiquier: true, RoleAdmin: true},
		ActionUpdate:      {RoleBoutiquier: true, RoleAdmin: true},
		ActionDelete:      {RoleBoutiquier: true, RoleAdmin: true},
		ActionRestore:     {RoleAdmin: true},
		ActionForceDelete: {RoleAdmin: true},
	},
}

// CanPerform responde si role puede ejecutar action sobre resource.
// Función pura: misma entrada, misma respuesta. Nunca lanza error; todo lo
// que no esté explícitamente permitido en la tabla queda denegado.
func CanPerform(role Role, action Action, resource Resource) bool {
	actions, ok := policy[resource]
	if !ok {
		return false
	}
	allowed, ok := actions[action]
	if !ok {
		return false
	}
	return allowed[role]
}
