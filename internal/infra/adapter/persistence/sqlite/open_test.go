package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLockOptions(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{name: "memory untouched", dsn: MemoryDSN, want: MemoryDSN},
		{name: "shared memory untouched", dsn: "file:board?mode=memory&cache=shared", want: "file:board?mode=memory&cache=shared"},
		{name: "plain file", dsn: "data/board.db", want: "data/board.db?_busy_timeout=5000&_txlock=immediate"},
		{name: "existing query", dsn: "board.db?_fk=1", want: "board.db?_fk=1&_busy_timeout=5000&_txlock=immediate"},
		{name: "caller settings kept", dsn: "board.db?_busy_timeout=100&_txlock=deferred", want: "board.db?_busy_timeout=100&_txlock=deferred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withLockOptions(tt.dsn))
		})
	}
}
