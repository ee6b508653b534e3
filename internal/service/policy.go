package service

import (
	"github.com/google/uuid"

	"sampleapp/internal/errors"
	"sampleapp/internal/model"
)

// CanViewIndex allows any signed-in account to list users.
func CanViewIndex(actor *model.Account) error {
	if actor == nil {
		return errors.ErrNotSignedIn
	}
	return nil
}

// CanEdit allows an account to edit only itself.
func CanEdit(actor *model.Account, targetID uuid.UUID) error {
	if actor == nil {
		return errors.ErrNotSignedIn
	}
	if actor.ID != targetID {
		return errors.ErrForbidden
	}
	return nil
}

// CanDelete allows admins to delete any account except their own.
func CanDelete(actor *model.Account, targetID uuid.UUID) error {
	if actor == nil {
		return errors.ErrNotSignedIn
	}
	if !actor.Admin {
		return errors.ErrForbidden
	}
	if actor.ID == targetID {
		return errors.ErrCannotDeleteSelf
	}
	return nil
}

// CanFollow allows a signed-in account to follow or unfollow anyone but itself.
func CanFollow(actor *model.Account, targetID uuid.UUID) error {
	if actor == nil {
		return errors.ErrNotSignedIn
	}
	if actor.ID == targetID {
		return errors.ErrCannotFollowSelf
	}
	return nil
}

// CanDeletePost allows only the author to delete a micropost.
func CanDeletePost(actor *model.Account, post *model.Post) error {
	if actor == nil {
		return errors.ErrNotSignedIn
	}
	if post.UserID != actor.ID {
		return errors.ErrForbidden
	}
	return nil
}

// ShowDeleteLink reports whether viewer sees a delete link on row in the users index.
func ShowDeleteLink(viewer, row *model.Account) bool {
	return viewer != nil && row != nil && CanDelete(viewer, row.ID) == nil
}
