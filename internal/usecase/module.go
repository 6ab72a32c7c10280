package usecase

import (
	"context"

	"go.uber.org/fx"
)

// registerBootstrap resolves the initial session state once the app starts.
// It runs in the background so a slow or unreachable backend never delays
// startup; the guard serves a placeholder until the state settles.
func registerBootstrap(lc fx.Lifecycle, session SessionUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go session.Bootstrap(context.Background())
			return nil
		},
	})
}

var Module = fx.Module("usecase",
	fx.Provide(NewSessionUsecase),
	fx.Provide(NewDocumentUsecase),
	fx.Provide(NewMeetingUsecase),
	fx.Provide(NewAuthFlowUsecase),
	fx.Invoke(registerBootstrap),
)
