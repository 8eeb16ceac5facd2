package restaurant

import (
	"github.com/m04kA/SMC-RestaurantService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
