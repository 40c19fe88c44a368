// Package messages supplies the key → message mappings that constraints
// resolve at construction time.
//
// A Catalog is an immutable set of messages. It can be assembled in code with
// a Builder, parsed from YAML or JSON documents, read from a file, or read
// from a Redis hash:
//
//	catalog := messages.NewBuilder().
//	    Add("MANDATORY_FIELD", "This field is required").
//	    Add("MIN_LENGTH_NOT_REACHED", "Too short").
//	    Build()
//
//	catalog, err := messages.LoadFile(ctx, "messages.yaml")
//
//	catalog, err := messages.LoadRedis(ctx, redisClient, "valid:messages")
//
// Nested documents are flattened with dots, so
//
//	signup:
//	  MANDATORY_FIELD: required
//
// yields the key "signup.MANDATORY_FIELD".
//
// Catalog implements constraint.Messages and constraint.Suggester: when a
// constraint declares a key the catalog does not know, the construction error
// names the closest known key by edit distance.
package messages
