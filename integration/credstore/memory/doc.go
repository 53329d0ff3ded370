// Package memory provides an in-memory credential store implementing the
// resolver capability of the bewit core.
//
// The store is a plain map behind a read-write mutex: cheap to create, safe
// for concurrent use, and deterministic in tests. For shared or persistent
// credential storage see the sibling redis and pg packages.
//
// # Usage
//
//	store := memory.New()
//	_ = store.Put(bewit.Credential{
//		KeyID:     "tenant-a",
//		Key:       secret,
//		Algorithm: bewit.SHA256,
//	})
//
//	svc := bewit.New()
//	res, err := svc.ValidateWithResolver(ctx, uri, store.Resolver(), token)
package memory
