package access

// Role do chamador, resolvida pelo provedor de identidade.
type Role string

const (
	RoleOwner        Role = "owner"
	RoleStaff        Role = "staff"
	RoleProfessional Role = "professional"
	RoleClient       Role = "client"
	RoleSystem       Role = "system"
)

// Actor é passado explicitamente para toda operação do core.
type Actor struct {
	Role           Role
	TenantID       uint
	UserID         uint
	ProfessionalID uint
	ClientPhone    string
}

func Client(tenantID uint, phone string) Actor {
	return Actor{Role: RoleClient, TenantID: tenantID, ClientPhone: phone}
}

func System(tenantID uint) Actor {
	return Actor{Role: RoleSystem, TenantID: tenantID}
}

// IsStaff: dono ou equipe da loja.
func (a Actor) IsStaff() bool {
	return a.Role == RoleOwner || a.Role == RoleStaff
}

func (a Actor) BelongsTo(tenantID uint) bool {
	return a.TenantID != 0 && a.TenantID == tenantID
}

// IsProfessional informa se o ator é o próprio profissional informado.
func (a Actor) IsProfessional(professionalID uint) bool {
	return a.Role == RoleProfessional && a.ProfessionalID != 0 && a.ProfessionalID == professionalID
}

// CanManageProfessional: equipe da loja ou o próprio profissional.
func (a Actor) CanManageProfessional(tenantID, professionalID uint) bool {
	if !a.BelongsTo(tenantID) {
		return false
	}
	return a.IsStaff() || a.IsProfessional(professionalID)
}

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleOwner, RoleStaff, RoleProfessional, RoleClient, RoleSystem:
		return r, true
	}
	return "", false
}
