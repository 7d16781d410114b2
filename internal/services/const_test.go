package services

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissingRow(t *testing.T) {
	assert.True(t, isMissingRow(sql.ErrNoRows))
	assert.True(t, isMissingRow(fmt.Errorf("find pool: %w", sql.ErrNoRows)))

	// infrastructure failures must not read as a missing row
	assert.False(t, isMissingRow(errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")))
	assert.False(t, isMissingRow(sql.ErrConnDone))
}
