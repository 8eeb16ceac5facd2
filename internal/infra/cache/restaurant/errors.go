package restaurant

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("restaurant.cache: failed to read entry")

	// ErrCacheWrite возвращается при ошибке записи или удаления в Redis
	ErrCacheWrite = errors.New("restaurant.cache: failed to write entry")

	// ErrDecode возвращается, когда закешированный снимок не удалось разобрать
	ErrDecode = errors.New("restaurant.cache: failed to decode entry")
)
