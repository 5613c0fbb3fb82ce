package redis

import (
	"fmt"

	"github.com/aspect/anchor/internal/model"
)

// Key prefix for all record store data
const keyPrefix = "anchor"

// accountKey returns the Redis key for a record account
func accountKey(addr model.Address) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, addr)
}
