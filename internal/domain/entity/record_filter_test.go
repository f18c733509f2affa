package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in     string
		want   StatusFilter
		wantOK bool
	}{
		{"", StatusFilterAll, true},
		{"all", StatusFilterAll, true},
		{"active", StatusFilterActive, true},
		{"completed", StatusFilterCompleted, true},
		{"Active", "", false},
		{"pending", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatusFilter(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestAuthContext_HasRole(t *testing.T) {
	auth := AuthContext{UserID: uuid.New(), Role: RoleDoctor}
	assert.True(t, auth.HasRole(RoleDoctor))
	assert.False(t, auth.HasRole(RolePatient))
	assert.False(t, AuthContext{Role: RoleDoctor}.HasRole(RoleDoctor), "anonymous caller")
}

func TestRoleLookups(t *testing.T) {
	id, ok := RoleIDByName(RolePatient)
	assert.True(t, ok)
	assert.Equal(t, RoleIDPatient, id)
	_, ok = RoleIDByName("admin")
	assert.False(t, ok)

	assert.Equal(t, RoleDoctor, RoleNameByID(RoleIDDoctor))
	assert.Equal(t, DoctorDashboardPath, DashboardPath(RoleDoctor))
	assert.Equal(t, LoginPath, DashboardPath(""))
}
