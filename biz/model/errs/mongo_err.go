package errs

import "go.mongodb.org/mongo-driver/v2/mongo"

func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	return mongo.IsDuplicateKeyError(err)
}
