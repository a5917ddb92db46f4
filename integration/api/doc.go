// Package api provides the REST client for the storefront backend.
//
// One Client carries the base URL, HTTP transport, and bearer token source
// shared by all endpoint groups: authentication, sales, product catalog,
// account management, and the admin views over all sales and registered
// clients. The backend owns the wire format; this package maps its responses
// onto Go types and passes its error details through verbatim for display.
//
// # Configuration
//
//	type Config struct {
//		BaseURL string        `env:"API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
//		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
//	}
//
// # Usage
//
//	var cfg api.Config
//	config.MustLoad(&cfg)
//
//	sessions := session.New(kv.NewMemory())
//	client, err := api.New(cfg,
//		api.WithTokenSource(sessions), // Authorization: Bearer <access>
//		api.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//
//	identity, tokens, err := client.Login(ctx, email, password)
//	if err != nil {
//		return err // backend detail, shown to the user as-is
//	}
//	_ = sessions.Login(ctx, identity, tokens)
//
// The client implements checkout.SalesAPI, so it plugs directly into the
// checkout orchestrator:
//
//	orch := checkout.New(cartEngine, client)
//
// # Error Handling
//
// Responses with status >= 400 become *Error carrying the backend's
// "detail" message. Check with errors.As:
//
//	var apiErr *api.Error
//	if errors.As(err, &apiErr) {
//		showMessage(apiErr.Detail)
//	}
//
// No retries are performed; a retry is a user-initiated repeat action.
package api
