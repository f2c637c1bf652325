package auth

import (
	"errors"

	"blogdesk/models"
)

// PermanentAdminID is the bootstrap admin created at provisioning time.
// It can never be deleted.
const PermanentAdminID = 1

var (
	ErrPermanentAdmin = errors.New("cannot delete the permanent admin account")
	ErrSelfDeletion   = errors.New("cannot delete your own account")
	ErrSuperAdminOnly = errors.New("only super-admin can delete admins")
	ErrNotPermitted   = errors.New("not permitted to update this admin")
)

// CanManageAdmin reports whether actor may update the admin with targetID:
// admins manage themselves, super-admins manage anyone.
func CanManageAdmin(actor *models.Admin, targetID int) bool {
	return actor.ID == targetID || actor.IsSuperAdmin
}

// CheckAdminDeletion decides whether actor may delete target. The
// permanent admin wins over every other rule, so deleting it fails the
// same way no matter who asks.
func CheckAdminDeletion(actor, target *models.Admin) error {
	if target.ID == PermanentAdminID {
		return ErrPermanentAdmin
	}
	if actor.ID == target.ID {
		return ErrSelfDeletion
	}
	if !actor.IsSuperAdmin {
		return ErrSuperAdminOnly
	}
	return nil
}
