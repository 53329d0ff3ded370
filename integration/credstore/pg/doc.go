// Package pg provides a PostgreSQL-backed credential store implementing the
// resolver capability of the bewit core.
//
// Credentials live in a single table, one row per key id, created on demand
// by EnsureSchema. The store suits deployments where credentials are
// provisioned rarely and validated often; pair it with the memory store as
// a read-through cache when lookup volume warrants it.
//
// # Configuration
//
// Connection settings map to environment variables for loading through
// core/config:
//
//	type Config struct {
//		ConnectionString string `env:"PG_CONN_URL,required"`
//		// pool sizing, retry behavior, table name...
//	}
//
// # Usage
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	store, err := pg.NewStore(pool, cfg.Table)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := store.EnsureSchema(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	svc := bewit.New()
//	res, err := svc.ValidateWithResolver(ctx, uri, store.Resolver(), token)
//
// Resolver errors (an outage, a scan failure) are returned as Go errors
// from validation, never converted into a verdict: an unavailable store
// must not look like an invalid token.
package pg
