// Package middleware provides net/http middleware that authorizes requests
// carrying a bewit token.
//
// The middleware validates the token found in the bewit query parameter
// against the URL the client requested, with the parameter itself stripped:
// the token never signs itself. Requests are authorized read-only, so only
// GET and HEAD pass.
//
// # Single Credential
//
//	cred := bewit.Credential{KeyID: "k1", Key: secret, Algorithm: bewit.SHA256}
//
//	mux := http.NewServeMux()
//	mux.Handle("/downloads/", middleware.Bewit(cred)(downloads))
//
// # Multi-Tenant Resolution
//
// When tokens are issued under many keys, resolve credentials by key id,
// typically backed by a credential store:
//
//	store := memory.New()
//	mux.Handle("/downloads/", middleware.BewitWithResolver(store.Resolver())(downloads))
//
// Handlers can recover which key authorized the request:
//
//	func downloads(w http.ResponseWriter, r *http.Request) {
//		keyID, _ := middleware.GetKeyID(r.Context())
//		// ...
//	}
//
// # Custom Configuration
//
//	mw := middleware.BewitWithConfig(middleware.BewitConfig{
//		Resolver: store.Resolver(),
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health"
//		},
//		ErrorHandler: func(w http.ResponseWriter, r *http.Request, res bewit.Result, err error) {
//			// Custom rejection response.
//		},
//		Logger: slog.Default(),
//	})
//
// # Token Extractors
//
// By default the token travels in the bewit query parameter. Clients that
// keep signed URLs clean can send it in a header instead, optionally
// falling back to the query parameter:
//
//	mw := middleware.BewitWithConfig(middleware.BewitConfig{
//		Credential: &cred,
//		TokenExtractor: middleware.BewitFromMultiple(
//			middleware.BewitFromHeader("X-Bewit"),
//			middleware.BewitFromQuery(),
//		),
//	})
//
// A token read from the query parameter is stripped from the URL before
// validation; a token read from anywhere else leaves the URL as received,
// so a bewit query parameter the issuer signed into the URL remains part
// of the signed material.
//
// Behind a reverse proxy that terminates TLS, the middleware trusts the
// X-Forwarded-Proto header to reconstruct the scheme the client used; make
// sure the proxy sets it, or signed https URLs will fail validation as http.
package middleware
