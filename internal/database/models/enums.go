package models

// OrganizationStatus defines the lifecycle flag of an organization
type OrganizationStatus string

const (
	OrganizationStatusActive OrganizationStatus = "active"
)

// AdminRole defines the role held by an admin within its organization
type AdminRole string

const (
	AdminRoleOwner AdminRole = "owner"
	AdminRoleAdmin AdminRole = "admin"
)

// LifecycleAction identifies the multi-step flow a journal event belongs to
type LifecycleAction string

const (
	LifecycleActionCreate LifecycleAction = "create"
	LifecycleActionRename LifecycleAction = "rename"
	LifecycleActionDelete LifecycleAction = "delete"
)

// LifecycleStatus is the outcome of a journaled step
type LifecycleStatus string

const (
	LifecycleStatusOK     LifecycleStatus = "ok"
	LifecycleStatusFailed LifecycleStatus = "failed"
)

// IsValid checks if the AdminRole is valid
func (r AdminRole) IsValid() bool {
	switch r {
	case AdminRoleOwner, AdminRoleAdmin:
		return true
	}
	return false
}

// IsValid checks if the LifecycleAction is valid
func (a LifecycleAction) IsValid() bool {
	switch a {
	case LifecycleActionCreate, LifecycleActionRename, LifecycleActionDelete:
		return true
	}
	return false
}
