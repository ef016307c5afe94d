package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	MembershipFree    = "Free"
	MembershipPremium = "Premium"

	BadgeBronze = "bronze"
	BadgeGold   = "gold"
)

type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email            string             `bson:"email" json:"email"`
	Username         string             `bson:"username" json:"username"`
	Badge            string             `bson:"badge" json:"badge"`
	Role             string             `bson:"role" json:"role"`
	MembershipStatus string             `bson:"membershipStatus" json:"membershipStatus"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	AboutMe          string             `bson:"aboutMe,omitempty" json:"aboutMe,omitempty"`
}

// NewUser builds a freshly registered free-tier account.
func NewUser(email, username string) User {
	return User{
		Email:            email,
		Username:         username,
		Badge:            BadgeBronze,
		Role:             RoleUser,
		MembershipStatus: MembershipFree,
		CreatedAt:        time.Now().UTC(),
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsPremium() bool {
	return u.MembershipStatus == MembershipPremium
}
