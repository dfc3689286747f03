// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/ardanlabs/ledger/app/services/node/handlers/v1/public"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/events"
	"github.com/ardanlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// group is empty since peers request these routes, starting with /chain,
// without a version prefix.
const group = ""

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, group, "/events", pbl.Events)
	app.Handle(http.MethodGet, group, "/chain", pbl.Chain)
	app.Handle(http.MethodGet, group, "/mine", pbl.Mine)
	app.Handle(http.MethodGet, group, "/mining/signal", pbl.SignalMining)
	app.Handle(http.MethodPost, group, "/transactions/new", pbl.SubmitTransaction)
	app.Handle(http.MethodGet, group, "/transactions/pending", pbl.Mempool)
	app.Handle(http.MethodPost, group, "/nodes/register", pbl.RegisterNodes)
	app.Handle(http.MethodGet, group, "/nodes/resolve", pbl.Resolve)
}
