// Package redis provides a Redis-backed credential store implementing the
// resolver capability of the bewit core.
//
// Credentials are stored as JSON values, one per key id, under a
// configurable key prefix. An optional TTL on Put lets Redis retire rotated
// keys automatically: a resolver miss after expiry surfaces to clients as a
// Bad verdict for the stale key id, which is the expected key-rotation
// behavior of the scheme.
//
// # Configuration
//
// Connection settings map to environment variables for loading through
// core/config:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		KeyPrefix      string        `env:"BEWIT_REDIS_KEY_PREFIX" envDefault:"bewit:credential:"`
//	}
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client, cfg.KeyPrefix)
//	err = store.Put(ctx, bewit.Credential{
//		KeyID:     "tenant-a",
//		Key:       secret,
//		Algorithm: bewit.SHA256,
//	}, 0)
//
//	svc := bewit.New()
//	res, err := svc.ValidateWithResolver(ctx, uri, store.Resolver(), token)
//
// Resolver errors (a Redis outage, a corrupt value) are returned as Go
// errors from validation, never converted into a verdict: an unavailable
// store must not look like an invalid token.
package redis
