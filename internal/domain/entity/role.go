package entity

// Roles carried in verified token claims. Role assignment happens in the
// identity service; the engine only gates operations on them.
const (
	RoleGuest = "guest"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)
