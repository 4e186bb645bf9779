package store

import (
	"github.com/MKhiriev/go-pass-sync/models"
	"github.com/Masterminds/squirrel"
)

const (
	passesTable   = "passes"
	syncDataTable = "sync_data"
	stateTable    = "engine_state"
)

// psql builds PostgreSQL statements ($1, $2, ...).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// lite builds SQLite statements (?).
var lite = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func buildCreatePassQuery(pass models.Pass) (string, []any, error) {
	return psql.Insert(passesTable).
		Columns("pass").
		Values(pass.String()).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildFindPassQuery(pass models.Pass) (string, []any, error) {
	return psql.Select("id", "pass", "created_at").
		From(passesTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		ToSql()
}

func buildListPassSummariesQuery() (string, []any, error) {
	return psql.Select(
		"p.pass",
		"p.created_at",
		"COUNT(DISTINCT d.domain)",
		"COUNT(d.id)",
		"COALESCE(SUM(d.size), 0)",
		"MAX(d.created_at)",
	).
		From(passesTable + " p").
		LeftJoin(syncDataTable + " d ON d.pass = p.pass").
		GroupBy("p.pass", "p.created_at").
		OrderBy("p.created_at DESC").
		ToSql()
}

func buildDeletePassEntriesQuery(pass models.Pass) (string, []any, error) {
	return psql.Delete(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		ToSql()
}

func buildDeletePassQuery(pass models.Pass) (string, []any, error) {
	return psql.Delete(passesTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		ToSql()
}

func buildSaveDataQuery(entry models.DataEntry) (string, []any, error) {
	return psql.Insert(syncDataTable).
		Columns("pass", "domain", "data", "size").
		Values(entry.Pass.String(), entry.Domain, entry.Data, entry.Size).
		Suffix("RETURNING id, created_at").
		ToSql()
}

// newest first; id breaks ties between entries of the same instant
var newestFirst = []string{"created_at DESC", "id DESC"}

func buildLatestDataQuery(pass models.Pass, domain string) (string, []any, error) {
	return psql.Select("id", "data", "size", "created_at").
		From(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		Where(squirrel.Eq{"domain": domain}).
		OrderBy(newestFirst...).
		Limit(1).
		ToSql()
}

// buildListVersionsQuery lists without a limit when limit is not positive.
func buildListVersionsQuery(pass models.Pass, domain string, limit int) (string, []any, error) {
	q := psql.Select("id", "size", "created_at").
		From(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		Where(squirrel.Eq{"domain": domain}).
		OrderBy(newestFirst...)
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return q.ToSql()
}

func buildGetVersionQuery(pass models.Pass, domain string, id int64) (string, []any, error) {
	return psql.Select("id", "data", "size", "created_at").
		From(syncDataTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"pass": pass.String()}).
		Where(squirrel.Eq{"domain": domain}).
		ToSql()
}

func buildDeleteDataQuery(pass models.Pass, domain string, id int64) (string, []any, error) {
	q := psql.Delete(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		Where(squirrel.Eq{"domain": domain})
	if id > 0 {
		q = q.Where(squirrel.Eq{"id": id})
	}
	return q.ToSql()
}

func buildPruneVersionsQuery(pass models.Pass, domain string, keep int) (string, []any, error) {
	return psql.Delete(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		Where(squirrel.Eq{"domain": domain}).
		Where(squirrel.Expr(
			"id NOT IN (SELECT id FROM "+syncDataTable+" WHERE pass = ? AND domain = ? ORDER BY created_at DESC, id DESC LIMIT ?)",
			pass.String(), domain, keep,
		)).
		ToSql()
}

func buildPruneAllQuery(keep int) (string, []any, error) {
	return psql.Delete(syncDataTable).
		Where(squirrel.Expr(
			"id IN (SELECT id FROM (SELECT id, ROW_NUMBER() OVER (PARTITION BY pass, domain ORDER BY created_at DESC, id DESC) AS rn FROM "+syncDataTable+") ranked WHERE rn > ?)",
			keep,
		)).
		ToSql()
}

func buildListDomainsQuery(pass models.Pass) (string, []any, error) {
	return psql.Select("domain").
		Distinct().
		From(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		OrderBy("domain").
		ToSql()
}

func buildPassStatsQuery(pass models.Pass) (string, []any, error) {
	return psql.Select("domain", "COUNT(*)", "COALESCE(SUM(size), 0)", "MAX(created_at)").
		From(syncDataTable).
		Where(squirrel.Eq{"pass": pass.String()}).
		GroupBy("domain").
		OrderBy("domain").
		ToSql()
}

func buildServerStatsQuery() (string, []any, error) {
	return psql.Select(
		"(SELECT COUNT(*) FROM "+passesTable+")",
		"COUNT(DISTINCT domain)",
		"COALESCE(SUM(size), 0)",
	).
		From(syncDataTable).
		ToSql()
}

// client state store

func buildGetStateQuery(key string) (string, []any, error) {
	return lite.Select("value").
		From(stateTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func buildSetStateQuery(key string, value []byte) (string, []any, error) {
	return lite.Insert(stateTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteStateQuery(key string) (string, []any, error) {
	return lite.Delete(stateTable).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}
