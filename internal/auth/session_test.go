package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestIsAuthenticated(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = time.Now }()

	tests := []struct {
		name        string
		accessToken string
		want        bool
		wantCleared bool
	}{
		{
			name:        "no token",
			accessToken: "",
			want:        false,
		},
		{
			name: "valid token",
			accessToken: signedToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
			}),
			want: true,
		},
		{
			name: "token expired ten seconds ago",
			accessToken: signedToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-10 * time.Second)),
			}),
			want:        false,
			wantCleared: true,
		},
		{
			name: "token expiring exactly now",
			accessToken: signedToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now),
			}),
			want:        false,
			wantCleared: true,
		},
		{
			name:        "token without exp claim",
			accessToken: signedToken(t, jwt.RegisteredClaims{Subject: "1"}),
			want:        false,
			wantCleared: true,
		},
		{
			name:        "undecodable token",
			accessToken: "not.a.jwt",
			want:        false,
			wantCleared: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemStore()
			require.NoError(t, store.SetAccess(tt.accessToken))
			require.NoError(t, store.SetRefresh("refresh"))

			assert.Equal(t, tt.want, IsAuthenticated(store))

			if tt.wantCleared {
				assert.Empty(t, store.Access())
				assert.Empty(t, store.Refresh())
			}
		})
	}
}
