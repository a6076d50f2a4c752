//go:build unit

package auth_test

import (
	"testing"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  auth.Role
		errIs error
	}{
		{name: "viewer", input: "viewer", want: auth.RoleViewer},
		{name: "operator", input: "operator", want: auth.RoleOperator},
		{name: "admin", input: "admin", want: auth.RoleAdmin},
		{name: "unknown role", input: "scheduler", errIs: auth.ErrInvalidRole},
		{name: "empty role", input: "", errIs: auth.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.NewRole(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
