// Package redis connects to the Redis server that stores message catalogs.
//
// Connect parses the URL, then pings until the server answers or the retry
// budget runs out:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	catalog, err := messages.LoadRedis(ctx, client, cfg.Hash)
//
// Settings are read from VALID_REDIS_URL, VALID_REDIS_HASH,
// VALID_REDIS_RETRY_ATTEMPTS, VALID_REDIS_RETRY_INTERVAL and
// VALID_REDIS_CONNECT_TIMEOUT.
package redis
