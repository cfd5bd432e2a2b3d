package appointment

import "github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
