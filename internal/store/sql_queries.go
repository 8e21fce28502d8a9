package store

import (
	sq "github.com/Masterminds/squirrel"
)

const entriesTable = "entries"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	entryColumns = []string{"id", "ciphertext", "digest", "created_at"}
)

func insertEntryQuery(sessionID, id, ciphertext, digest string, createdAt any) (string, []any, error) {
	return psql.Insert(entriesTable).
		Columns("session_id", "id", "ciphertext", "digest", "created_at").
		Values(sessionID, id, ciphertext, digest, createdAt).
		ToSql()
}

func getEntryQuery(sessionID, id string) (string, []any, error) {
	return psql.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func findMatchingQuery(sessionID, ciphertext, digest string) (string, []any, error) {
	return psql.Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		Where(sq.Eq{"digest": digest}).
		Where(sq.Eq{"ciphertext": ciphertext}).
		OrderBy("seq").
		Limit(1).
		ToSql()
}

func listIDsQuery(sessionID string) (string, []any, error) {
	return psql.Select("id").
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("seq").
		ToSql()
}

func countQuery(sessionID string) (string, []any, error) {
	return psql.Select("COUNT(*)").
		From(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func dropSessionQuery(sessionID string) (string, []any, error) {
	return psql.Delete(entriesTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}
