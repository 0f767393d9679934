package fx

import (
	"testing"

	"nba-stats/internal/server"

	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		Module,
		fx.Invoke(func(*server.StatsServer) {}),
	)
	if err != nil {
		t.Fatalf("fx.ValidateApp() error = %v", err)
	}
}
