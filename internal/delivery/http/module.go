package http

import (
	"go.uber.org/fx"

	"hrbridge/internal/delivery/http/handler"
	"hrbridge/internal/delivery/http/router"
)

var Module = fx.Module("http",
	fx.Provide(
		handler.NewHealthHandler,
		handler.NewSessionHandler,
		handler.NewDocumentHandler,
		handler.NewMeetingHandler,
		handler.NewCallbackHandler,
		handler.NewLogHandler,
		router.NewRouter,
	),
)
