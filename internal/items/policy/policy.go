package policy

import (
	"fmt"

	"github.com/architect/lostfound/internal/auth"
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/internal/common/validation"
	"github.com/architect/lostfound/internal/items/models"
)

// CanMutate decides whether the caller may modify an item owned by
// ownerEmail. Admins may modify anything; everyone else only their own
// records.
func CanMutate(identity auth.Identity, ownerEmail string) error {
	if identity.IsAdmin() {
		return nil
	}
	if identity.Email == ownerEmail {
		return nil
	}
	return errors.Forbidden("not authorized to edit this item")
}

// ValidateUpdate checks a proposed update set against the mutable-field
// whitelist and the status value constraint. A single unknown key rejects
// the whole update; nothing is silently dropped.
func ValidateUpdate(updates map[string]interface{}) error {
	for key := range updates {
		if !models.IsMutable(key) {
			return errors.BadRequest(fmt.Sprintf("field '%s' cannot be updated", key))
		}
	}

	if raw, ok := updates["status"]; ok {
		s, ok := raw.(string)
		if !ok || !models.Status(s).Valid() {
			return errors.BadRequest(`status must be "Lost" or "Found"`)
		}
	}

	return nil
}

// ValidateCreate checks the required fields for item creation.
func ValidateCreate(req models.CreateItemRequest) error {
	if verrs := validation.Validate(req); len(verrs) > 0 {
		return errors.Validation("title and status are required", validation.Fields(verrs))
	}
	if !req.Status.Valid() {
		return errors.BadRequest(`status must be "Lost" or "Found"`)
	}
	return nil
}
