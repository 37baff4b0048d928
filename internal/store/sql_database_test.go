package store

import (
	"testing"

	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_PlaceholdersFollowDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		wantSQL string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, wantSQL: "SELECT text FROM notes WHERE uid = $1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, wantSQL: "SELECT text FROM notes WHERE uid = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, logger.Nop())

			query, args, err := db.builder.Select("text").From("notes").Where(sq.Eq{"uid": "u1"}).ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, query)
			assert.Equal(t, []any{"u1"}, args)
			assert.Equal(t, tt.dialect, db.Dialect())
		})
	}
}
