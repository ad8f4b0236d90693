package storage

import "go.mongodb.org/mongo-driver/v2/bson"

const UserCollection = "users"

// UserRecord mirrors the documents in the users collection, including the
// mongoose version key so records written by either side stay compatible.
type UserRecord struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UserId   string        `bson:"userId" json:"userId"`
	Email    string        `bson:"email" json:"email"`
	Password string        `bson:"password" json:"password"` // bcrypt hash
	Version  int           `bson:"__v" json:"-"`
}
