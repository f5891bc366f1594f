package redis

import (
	"fmt"

	"github.com/blackpdx/ggokka-ot/internal/model"
)

// Key prefix for all app data
const keyPrefix = "ggokka"

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%d", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// usersIndexKey returns the Redis key for the sorted set of all user IDs
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// userSequenceKey returns the Redis key of the user ID counter
func userSequenceKey() string {
	return fmt.Sprintf("%s:seq:user", keyPrefix)
}
