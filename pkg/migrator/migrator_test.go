package migrator

import (
	"database/sql"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

func TestRun_UnknownCommand(t *testing.T) {
	// The command is rejected before the handle is touched.
	err := Run(&sql.DB{}, fstest.MapFS{}, "sideways")
	assert.ErrorContains(t, err, `unknown command "sideways"`)
}
