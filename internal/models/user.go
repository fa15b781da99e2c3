package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role value that grants admin status.
const RoleAdmin = "admin"

// User.Role is nil when the client sent none; an explicit "" is stored as is.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email" form:"email"`
	DisplayName string             `bson:"displayName,omitempty" json:"displayName,omitempty" form:"displayName"`
	Role        *string            `bson:"role,omitempty" json:"role,omitempty" form:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role != nil && *u.Role == RoleAdmin
}

// RoleOf returns a Role value for role.
func RoleOf(role string) *string {
	return &role
}

// AdminStatus is the answer of the admin check endpoint.
type AdminStatus struct {
	Admin bool `json:"admin"`
}
