package mocks

import (
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisMock returns a real *redis.Client + redismock controller.
// We can ExpectLPush/LTrim/Expire and assert expectations on the log sink.
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	return db, mock
}
