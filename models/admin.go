package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AdminUser struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// AdminSession is one issued bearer token. A token is valid iff a session
// with that exact token exists and expiresAt is still in the future; expired
// sessions are left in place and filtered out at lookup time.
type AdminSession struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"-"`
	AdminID   bson.ObjectID `bson:"adminId" json:"-"`
	Token     string        `bson:"token" json:"token"`
	ExpiresAt time.Time     `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time     `bson:"createdAt" json:"-"`
}
