// Package checker provides ready-made existence checks for the validkit
// factories, backed by Postgres, Redis, MongoDB, or a plain HTTP endpoint.
//
// Every constructor returns a func(ctx, value) (bool, error) reporting
// whether value is already taken in the backing store, which is exactly the
// shape validkit.NewEmailCheck, NewUsernameCheck, and NewUniqueCheck accept.
// Constructors take the narrowest slice of their client they can, so tests
// substitute fakes without a running server.
//
// # Usage
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	engine := validkit.NewEmailCheck(checker.Postgres(pool, "users", "email"))
//
//	rdb := redis.NewClient(&redis.Options{Addr: addr})
//	engine = validkit.NewUsernameCheck(checker.RedisSet(rdb, "taken:usernames"))
//
//	coll := client.Database("app").Collection("users")
//	engine = validkit.NewUniqueCheck(checker.Mongo(coll, "slug"))
//
//	engine = validkit.NewUniqueCheck(checker.HTTP(nil, "https://api.example.com/check", "value"))
//
// Backend failures are wrapped with the package's sentinel errors and
// surface through the engine as the invalid state carrying the error text.
//
// Construction-time mistakes, such as an empty table name, panic: they are
// programmer errors, not runtime conditions.
package checker
