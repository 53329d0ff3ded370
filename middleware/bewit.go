package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/bewit/core/bewit"
)

// bewitKeyIDContextKey is used as a key for storing the validated key id in
// the request context.
type bewitKeyIDContextKey struct{}

// BewitConfig configures the bewit authorization middleware.
type BewitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Service is the bewit service used for validation (default: bewit.New())
	Service *bewit.Service
	// Credential validates every request against a single known credential.
	// Exactly one of Credential or Resolver must be set.
	Credential *bewit.Credential
	// Resolver looks up the credential for the token's key id (multi-tenant)
	Resolver bewit.ResolverFunc
	// TokenExtractor overrides where the token is read from (default:
	// BewitFromQuery). See the Token Extractors section for provided
	// extractors and how they interact with URL stripping.
	TokenExtractor func(r *http.Request) string
	// ErrorHandler handles rejected requests (default: plain-text status response)
	ErrorHandler func(w http.ResponseWriter, r *http.Request, res bewit.Result, err error)
	// Logger receives validation failures (default: discard)
	Logger *slog.Logger
}

// Bewit creates an authorization middleware validating every request against
// a single credential. The token is expected in the bewit query parameter.
//
// Usage:
//
//	mux.Handle("/reports/", middleware.Bewit(cred)(reportsHandler))
func Bewit(cred bewit.Credential) func(http.Handler) http.Handler {
	return BewitWithConfig(BewitConfig{Credential: &cred})
}

// BewitWithResolver creates an authorization middleware resolving credentials
// by the key id embedded in the token, for validating tokens issued under
// many keys.
func BewitWithResolver(resolve bewit.ResolverFunc) func(http.Handler) http.Handler {
	return BewitWithConfig(BewitConfig{Resolver: resolve})
}

// BewitWithConfig creates an authorization middleware with custom
// configuration. Panics unless exactly one credential source is set, since a
// misconfigured authorizer must not start serving.
//
// The middleware reconstructs the request URL (scheme from X-Forwarded-Proto
// or the TLS state, host from the Host header) and validates the token
// against it. When the token travels in the bewit query parameter, the
// parameter is stripped first so the validated URL matches what the issuer
// signed; a token arriving out of band (a header, via TokenExtractor) leaves
// the URL untouched, so a bewit query parameter the issuer signed into the
// URL stays part of it. Only GET and HEAD requests can pass: bewits
// authorize read-only access.
func BewitWithConfig(cfg BewitConfig) func(http.Handler) http.Handler {
	if (cfg.Credential == nil) == (cfg.Resolver == nil) {
		panic("bewit middleware: exactly one of Credential or Resolver is required")
	}

	if cfg.Service == nil {
		cfg.Service = bewit.New()
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultErrorHandler
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				cfg.ErrorHandler(w, r, bewit.Bad("Invalid method"), nil)
				return
			}

			reqURL := requestURL(r)
			target, qtok := bewit.StripURL(reqURL)
			tok := qtok
			if cfg.TokenExtractor != nil {
				tok = cfg.TokenExtractor(r)
				if tok != qtok {
					// Out-of-band token: a bewit parameter in the URL, if
					// any, is part of the signed URL, not the carrier.
					target = reqURL
				}
			}
			if tok == "" {
				cfg.ErrorHandler(w, r, bewit.Bad("Missing bewit"), nil)
				return
			}

			res, keyID, err := validate(r.Context(), cfg, target, tok)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "bewit validation failed",
					slog.Any("error", err))
				cfg.ErrorHandler(w, r, bewit.Result{}, err)
				return
			}
			if !res.OK() {
				if res.Code == bewit.CodeAuthenticationError {
					cfg.Logger.WarnContext(r.Context(), "bewit authentication error",
						slog.String("reason", res.Reason),
						slog.String("path", r.URL.Path))
				}
				cfg.ErrorHandler(w, r, res, nil)
				return
			}

			ctx := context.WithValue(r.Context(), bewitKeyIDContextKey{}, keyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validate dispatches to the configured credential source and reports the
// key id that authorized the request.
func validate(ctx context.Context, cfg BewitConfig, u *url.URL, tok string) (bewit.Result, string, error) {
	if cfg.Credential != nil {
		res, err := cfg.Service.Validate(u, *cfg.Credential, tok)
		return res, cfg.Credential.KeyID, err
	}

	var resolvedID string
	resolve := func(ctx context.Context, keyID string) (*bewit.Credential, error) {
		cred, err := cfg.Resolver(ctx, keyID)
		if err == nil && cred != nil {
			resolvedID = cred.KeyID
		}
		return cred, err
	}
	res, err := cfg.Service.ValidateWithResolver(ctx, u, resolve, tok)
	return res, resolvedID, err
}

// GetKeyID retrieves the key id that authorized the request. The second
// return value is false when the request did not pass the bewit middleware.
func GetKeyID(ctx context.Context) (string, bool) {
	keyID, ok := ctx.Value(bewitKeyIDContextKey{}).(string)
	return keyID, ok
}

// requestURL rebuilds the absolute URL the client requested. Server-side
// request URLs carry only path and query; scheme and host come from the TLS
// state, the X-Forwarded-Proto header set by reverse proxies, and the Host
// header.
func requestURL(r *http.Request) *url.URL {
	u := *r.URL
	if u.Host == "" {
		u.Host = r.Host
	}
	switch {
	case r.Header.Get("X-Forwarded-Proto") != "":
		u.Scheme = r.Header.Get("X-Forwarded-Proto")
	case u.Scheme != "":
		// Absolute-form request target, scheme already known.
	case r.TLS != nil:
		u.Scheme = "https"
	default:
		u.Scheme = "http"
	}
	return &u
}

// defaultErrorHandler maps verdicts to HTTP statuses: malformed input to
// 400, expiry and authentication failures to 401, infrastructure errors
// to 500.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, res bewit.Result, err error) {
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	switch res.Code {
	case bewit.CodeBad:
		http.Error(w, res.Reason, http.StatusBadRequest)
	case bewit.CodeExpired:
		http.Error(w, "Access expired", http.StatusUnauthorized)
	default:
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
}

// Token Extractors
//
// The following functions provide strategies for reading the bewit token
// from HTTP requests. They can be used individually or combined with
// BewitFromMultiple.

// BewitFromQuery returns an extractor that reads the token from the bewit
// query parameter, the default transport. A token found here is stripped
// from the URL before validation, exactly as when no extractor is set.
func BewitFromQuery() func(r *http.Request) string {
	return func(r *http.Request) string {
		_, tok := bewit.StripURL(r.URL)
		return tok
	}
}

// BewitFromHeader returns an extractor that reads the token from a custom
// header, for clients that keep signed URLs free of token parameters.
func BewitFromHeader(headerName string) func(r *http.Request) string {
	return func(r *http.Request) string {
		return r.Header.Get(headerName)
	}
}

// BewitFromMultiple returns an extractor that tries multiple extractors in
// order and returns the first non-empty token found.
func BewitFromMultiple(extractors ...func(r *http.Request) string) func(r *http.Request) string {
	return func(r *http.Request) string {
		for _, extract := range extractors {
			if tok := extract(r); tok != "" {
				return tok
			}
		}
		return ""
	}
}
