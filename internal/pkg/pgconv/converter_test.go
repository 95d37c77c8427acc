//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"testing"

	"villabook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringPtrFromPgtype(t *testing.T) {
	got := pgconv.StringPtrFromPgtype(pgtype.Text{String: "late check-in", Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "late check-in", *got)

	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{Valid: false}))
}

func TestStringPtrToPgtype(t *testing.T) {
	phone := "+44 161 555 0199"
	assert.Equal(t, pgtype.Text{String: phone, Valid: true}, pgconv.StringPtrToPgtype(&phone))

	// nil pointer maps to SQL NULL, not an empty string
	assert.Equal(t, pgtype.Text{Valid: false}, pgconv.StringPtrToPgtype(nil))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errors.Join(errors.New("find booking"), pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("connection refused")))
	assert.False(t, pgconv.IsNoRows(nil))
}
