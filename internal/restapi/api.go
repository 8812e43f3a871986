package restapi

import (
	"github.com/Rabelo83/rts-backend.schedules.agent/internal/app"
)

// RestAPI exposes the answering engine over HTTP. It holds no state of its
// own beyond the shared application dependencies.
type RestAPI struct {
	App *app.Application
}
