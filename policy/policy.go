// Package policy centralizes who may mutate what. Handlers resolve the
// caller and the resource, then ask here instead of spreading ad hoc role
// and ownership comparisons across routes.
package policy

import (
	"chatterbox/models"
)

// CanModifyPost allows a post's author and admins to update or delete it.
func CanModifyPost(actor models.User, post models.Post) bool {
	return actor.IsAdmin() || actor.Email == post.AuthorEmail
}

// CanCreatePost enforces the free-tier cap: a Free author with
// existingPosts at or over the cap is blocked; Premium authors are exempt.
func CanCreatePost(actor models.User, existingPosts int64) bool {
	if actor.IsPremium() {
		return true
	}
	return existingPosts < FreePostCap
}

// FreePostCap is the number of posts a Free-tier account may hold.
const FreePostCap = 5

// CanReportComment allows any authenticated caller to report a comment
// that has not been reported yet.
func CanReportComment(comment models.Comment) bool {
	return !comment.Reported
}
