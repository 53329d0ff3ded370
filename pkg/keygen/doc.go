// Package keygen provisions bewit credential material: UUID key ids and
// cryptographically random secrets.
//
// Use it on the issuing side when creating credentials for a new tenant or
// rotating an existing key:
//
//	cred, err := keygen.NewCredential(bewit.SHA256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = store.Put(cred)
//
// Key ids produced here are plain UUIDs, so they never contain the reserved
// token separator character.
package keygen
