package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/mlevko/storefront/internal/client/api"
	"github.com/mlevko/storefront/internal/client/config"
	"github.com/mlevko/storefront/internal/client/services"
	"github.com/mlevko/storefront/internal/client/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config         *config.Config
	authService    services.AuthService
	profileService services.ProfileService
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := session.InitStore(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing local store: %s", err.Error())
		return nil, err
	}

	var apiClient api.Client
	if c.DemoMode {
		apiClient = api.NewMockClient()
	} else {
		apiClient = api.NewHTTPClient(c.ServerEndpointAddr)
	}

	as := services.NewAuthService(apiClient, db)
	ps := services.NewProfileService(apiClient)

	return &App{config: c, authService: as, profileService: ps, reader: bufio.NewReader(os.Stdin)}, nil
}

// Run restores any persisted session and drops into the REPL. It blocks
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)

	sess, err := a.authService.Restore(ctx)
	if err != nil {
		log.Printf("error restoring session: %s", err.Error())
	} else if sess != nil {
		log.Printf("Welcome back, %s", sess.Email)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}
