package testutil

import (
	"testing"
	"time"

	"github.com/collectam/collectam-web/internal/domain/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Profile builders, one per platform role. IDs are fresh per call so
// tests never collide on fixture data.

// AdminProfile returns a platform admin profile.
func AdminProfile() models.UserProfile {
	return models.UserProfile{
		ID:        uuid.NewString(),
		FirstName: "Ada",
		LastName:  "Admin",
		Email:     "admin@test.com",
		Role:      models.RoleAdmin,
	}
}

// OrgAdminProfile returns an organization admin profile.
func OrgAdminProfile() models.UserProfile {
	return models.UserProfile{
		ID:             uuid.NewString(),
		FirstName:      "Olga",
		LastName:       "Orgadmin",
		Email:          "orgadmin@test.com",
		Role:           models.RoleOrgAdmin,
		OrganizationID: uuid.NewString(),
	}
}

// CollectorProfile returns a waste collector profile.
func CollectorProfile() models.UserProfile {
	return models.UserProfile{
		ID:             uuid.NewString(),
		FirstName:      "Carl",
		LastName:       "Collector",
		Email:          "collector@test.com",
		Role:           models.RoleCollector,
		OrganizationID: uuid.NewString(),
	}
}

// HouseholdProfile returns a household user profile.
func HouseholdProfile() models.UserProfile {
	return models.UserProfile{
		ID:        uuid.NewString(),
		FirstName: "Uma",
		LastName:  "User",
		Email:     "user@test.com",
		Role:      models.RoleUser,
	}
}

// TokenWithRole mints a signed JWT whose payload carries the given role
// claim. The signing key is a test throwaway; role extraction never
// verifies signatures, it only needs a decodable payload.
func TokenWithRole(t *testing.T, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"role": role,
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to mint test token: %v", err)
	}
	return token
}

// TokenWithoutRole mints a signed JWT whose payload has no role claim.
func TokenWithoutRole(t *testing.T) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to mint test token: %v", err)
	}
	return token
}
