package appointment

import (
	"github.com/xsalon/scheduling-service/pkg/dbmetrics"
)

// Executor aliases shared with the other repositories.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
