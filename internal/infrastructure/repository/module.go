package repository

import (
	"go.uber.org/fx"

	"hrbridge/internal/infrastructure/httpclient"
)

// provideAPILogSaver exposes the audit repository as the client's log sink
func provideAPILogSaver(r APILogRepository) httpclient.APILogSaver {
	return r
}

var Module = fx.Module("repository",
	fx.Provide(NewUserRepository),
	fx.Provide(NewDocumentRepository),
	fx.Provide(NewMeetingRepository),
	fx.Provide(NewAPILogRepository),
	fx.Provide(provideAPILogSaver),
)
