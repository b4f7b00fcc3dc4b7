// Package sql embeds the schema migrations and named queries for the
// forecast store.
package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/insert_run.sql
var InsertRun string

//go:embed queries/update_run_counts.sql
var UpdateRunCounts string

//go:embed queries/delete_run.sql
var DeleteRun string

//go:embed queries/demand_by_drug.sql
var DemandByDrug string

//go:embed queries/count_run_visits.sql
var CountRunVisits string
