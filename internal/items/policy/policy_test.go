package policy

import (
	"testing"

	"github.com/architect/lostfound/internal/auth"
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/internal/items/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanMutate(t *testing.T) {
	owner := auth.Identity{Email: "owner@example.com", Role: auth.RoleUser}
	stranger := auth.Identity{Email: "other@example.com", Role: auth.RoleUser}
	admin := auth.Identity{Email: "admin@example.com", Role: auth.RoleAdmin}

	assert.NoError(t, CanMutate(owner, "owner@example.com"))
	assert.NoError(t, CanMutate(admin, "owner@example.com"))

	err := CanMutate(stranger, "owner@example.com")
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.Status)
}

func TestCanMutate_AnonymousOwner(t *testing.T) {
	// Items created anonymously have no owner; only admins may touch them.
	user := auth.Identity{Email: "someone@example.com", Role: auth.RoleUser}
	admin := auth.Identity{Email: "admin@example.com", Role: auth.RoleAdmin}

	assert.Error(t, CanMutate(user, ""))
	assert.NoError(t, CanMutate(admin, ""))
}

func TestValidateUpdate_Whitelist(t *testing.T) {
	err := ValidateUpdate(map[string]interface{}{
		"title":      "Wallet",
		"created_by": "attacker@example.com",
	})
	require.Error(t, err)
	appErr := err.(*errors.AppError)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "created_by")
}

func TestValidateUpdate_ImmutableColumns(t *testing.T) {
	for _, field := range []string{"id", "created_by", "created_at"} {
		err := ValidateUpdate(map[string]interface{}{field: "x"})
		assert.Error(t, err, "field %s must be rejected", field)
	}
}

func TestValidateUpdate_StatusValue(t *testing.T) {
	assert.NoError(t, ValidateUpdate(map[string]interface{}{"status": "Lost"}))
	assert.NoError(t, ValidateUpdate(map[string]interface{}{"status": "Found"}))

	err := ValidateUpdate(map[string]interface{}{"status": "Missing"})
	require.Error(t, err)
	assert.Equal(t, 400, err.(*errors.AppError).Status)

	// Non-string status values are invalid too.
	assert.Error(t, ValidateUpdate(map[string]interface{}{"status": 42}))
}

func TestValidateUpdate_AllMutableFields(t *testing.T) {
	updates := map[string]interface{}{}
	for _, f := range models.MutableFields {
		updates[f] = "x"
	}
	updates["status"] = "Found"
	assert.NoError(t, ValidateUpdate(updates))
}

func TestValidateCreate(t *testing.T) {
	valid := models.CreateItemRequest{Title: "Wallet", Status: models.StatusLost}
	assert.NoError(t, ValidateCreate(valid))

	missingTitle := models.CreateItemRequest{Status: models.StatusLost}
	err := ValidateCreate(missingTitle)
	require.Error(t, err)
	assert.Equal(t, 400, err.(*errors.AppError).Status)

	missingStatus := models.CreateItemRequest{Title: "Wallet"}
	assert.Error(t, ValidateCreate(missingStatus))

	badStatus := models.CreateItemRequest{Title: "Wallet", Status: "Missing"}
	err = ValidateCreate(badStatus)
	require.Error(t, err)
	assert.Equal(t, 400, err.(*errors.AppError).Status)
}
