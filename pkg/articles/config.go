package articles

import "time"

type Config struct {
	// FetchTimeout bounds the whole fetch, connection to body.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT,default=10s" validate:"required"`
}
