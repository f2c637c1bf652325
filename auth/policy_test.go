package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blogdesk/models"
)

func TestCanManageAdmin(t *testing.T) {
	regular := &models.Admin{ID: 2}
	super := &models.Admin{ID: 3, IsSuperAdmin: true}

	assert.True(t, CanManageAdmin(regular, 2))
	assert.False(t, CanManageAdmin(regular, 4))
	assert.True(t, CanManageAdmin(super, 3))
	assert.True(t, CanManageAdmin(super, 4))
}

func TestCheckAdminDeletion(t *testing.T) {
	first := &models.Admin{ID: 1, IsSuperAdmin: true}
	super := &models.Admin{ID: 2, IsSuperAdmin: true}
	regular := &models.Admin{ID: 3}
	other := &models.Admin{ID: 4}

	tests := []struct {
		name   string
		actor  *models.Admin
		target *models.Admin
		want   error
	}{
		{"super deletes regular", super, other, nil},
		{"permanent admin is never deletable", super, first, ErrPermanentAdmin},
		{"even the permanent admin cannot delete itself", first, first, ErrPermanentAdmin},
		{"self deletion", super, super, ErrSelfDeletion},
		{"regular cannot delete", regular, other, ErrSuperAdminOnly},
		{"regular cannot delete a super-admin", regular, super, ErrSuperAdminOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdminDeletion(tt.actor, tt.target)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
