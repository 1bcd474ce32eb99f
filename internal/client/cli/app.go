package cli

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/dailyepiphany/epiphany/internal/client/client"
	"github.com/dailyepiphany/epiphany/internal/client/config"
	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/provider"
	"github.com/dailyepiphany/epiphany/internal/client/services"
	"github.com/dailyepiphany/epiphany/internal/community"
	"github.com/dailyepiphany/epiphany/internal/logging"
	"github.com/dailyepiphany/epiphany/internal/notify"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It holds the wired services plus the
// session-scoped state the REPL works against: the active identity, its
// settings, today's accepted challenge and the most recent result.
type App struct {
	config   *config.Config
	log      logging.Logger
	identity services.IdentityService
	settings services.SettingsService
	history  services.HistoryService
	epiphany *services.EpiphanyService
	feed     community.Source
	notifier notify.Notifier

	reader *bufio.Reader
	out    io.Writer

	user            *models.User
	activeSettings  models.Settings
	activeChallenge *models.DailyChallenge
	lastResult      *models.Epiphany
}

// NewApp opens the local database and wires every service.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	gemini := provider.NewGeminiClient(
		c.ProviderAPIKey, c.ProviderBaseURL, c.TextModel, c.ImageModel, c.ProviderTimeout)

	is := services.NewIdentityService(repos.DB, log)
	ss := services.NewSettingsService(repos.DB, log)
	hs := services.NewHistoryService(repos.DB, log)
	es := services.NewEpiphanyService(gemini, hs, is, log)

	return &App{
		config:   c,
		log:      log,
		identity: is,
		settings: ss,
		history:  hs,
		epiphany: es,
		feed:     community.NewMockSource(rand.New(rand.NewSource(time.Now().UnixNano()))),
		notifier: notify.NewLogNotifier(log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the previous session and enters the REPL, blocking until the
// user exits.
func (a *App) Run(ctx context.Context) {
	a.user = a.identity.RestoreSession(ctx)
	a.activeSettings = a.settings.Load(ctx, a.user)

	a.epiphany.OnStateChange(func(st services.LoadingState) {
		switch st {
		case services.StateGeneratingText:
			printlnFn("Analyzing mundane observation...")
		case services.StateGeneratingImage:
			printlnFn("Visualizing the connection...")
		}
	})

	printlnFn("Daily Epiphany (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isSignedIn() bool {
	return a.user != nil
}

// getStatus renders the prompt suffix: the signed-in name and current streak.
func (a *App) getStatus() string {
	if a.user == nil {
		return "(guest)"
	}
	s := "(" + a.user.Name
	if a.user.Streak > 0 {
		s += " 🔥" + strconv.Itoa(a.user.Streak)
	}
	return s + ")"
}
