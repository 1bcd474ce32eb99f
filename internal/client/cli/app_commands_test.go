package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailyepiphany/epiphany/internal/client/config"
	"github.com/dailyepiphany/epiphany/internal/client/models"
	"github.com/dailyepiphany/epiphany/internal/client/services"
	"github.com/dailyepiphany/epiphany/internal/logging"
	"github.com/dailyepiphany/epiphany/internal/notify"

	_ "modernc.org/sqlite"
)

// ------------ helpers ------------

type fakeProvider struct {
	textErr  error
	imageErr error
}

func (f *fakeProvider) GenerateText(ctx context.Context, input string, category models.Category, style models.EpiphanyStyle) (models.EpiphanyContent, error) {
	if f.textErr != nil {
		return models.EpiphanyContent{}, f.textErr
	}
	return models.EpiphanyContent{
		Title:        "Test Title",
		Concept:      "Test Concept",
		Explanation:  "Test explanation.",
		Fact:         "Test fact.",
		VisualPrompt: "test visual",
	}, nil
}

func (f *fakeProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if f.imageErr != nil {
		return "", f.imageErr
	}
	return "aW1n", nil
}

func newTestApp(t *testing.T, p *fakeProvider, lines ...string) *App {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE blobs (namespace TEXT PRIMARY KEY, payload BLOB NOT NULL)`)
	require.NoError(t, err)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	is := services.NewIdentityService(db, log)
	ss := services.NewSettingsService(db, log)
	hs := services.NewHistoryService(db, log)
	es := services.NewEpiphanyService(p, hs, is, log)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.MindfulTick = time.Millisecond

	return &App{
		config:         cfg,
		log:            log,
		identity:       is,
		settings:       ss,
		history:        hs,
		epiphany:       es,
		notifier:       notify.NewLogNotifier(log),
		reader:         readerFromLines(lines...),
		out:            &bytes.Buffer{},
		activeSettings: models.DefaultSettings(),
	}
}

// capturePrints redirects printlnFn into a buffer for the test's duration.
func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func printed(lines *[]string) string {
	return strings.Join(*lines, "\n")
}

// ------------ tests ------------

func TestObserve_GuestFlowPersistsRecord(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{},
		"A bird flew past my window", // observation
		"Nature",                     // category
	)
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))

	assert.Contains(t, printed(lines), "Test Title")

	records := app.history.Load(ctx, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "A bird flew past my window", records[0].OriginalInput)
	assert.Equal(t, models.CategoryNature, records[0].Category)
	assert.False(t, records[0].IsChallenge)
	require.NotNil(t, app.lastResult)
}

func TestObserve_SeedPrefillsInput(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{},
		"calm and present", // continues the seed
		"",                 // default category
	)
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, "I feel "))

	records := app.history.Load(ctx, nil)
	require.Len(t, records, 1)
	assert.Equal(t, "I feel calm and present", records[0].OriginalInput)
	assert.Equal(t, models.CategoryOther, records[0].Category)
}

func TestObserve_GenerationFailureKeepsHistoryClean(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{textErr: errors.New("upstream down")},
		"something", "")
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))

	assert.Contains(t, printed(lines), "Try again")
	assert.Empty(t, app.history.Load(ctx, nil))
	assert.Nil(t, app.lastResult)
	assert.Equal(t, services.StateIdle, app.epiphany.State())
}

func TestObserve_ChallengeConsumedEvenOnFailure(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{textErr: errors.New("upstream down")},
		"something", "")

	require.NoError(t, app.Challenge(context.Background(), "start"))
	require.NotNil(t, app.activeChallenge)

	require.NoError(t, app.Observe(context.Background(), ""))
	assert.Nil(t, app.activeChallenge)
}

func TestObserve_ChallengeAdvancesStreakForSignedInUser(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{},
		"the texture of tree bark", "Nature")
	ctx := context.Background()

	user, err := app.identity.Login(ctx, models.NewUser("Alex", "alex@example.com"), models.DefaultSettings())
	require.NoError(t, err)
	app.user = user

	require.NoError(t, app.Challenge(ctx, "start"))
	require.NoError(t, app.Observe(ctx, ""))

	assert.Equal(t, 1, app.user.Streak)
	assert.Contains(t, app.user.Badges, "novice")
	assert.Contains(t, printed(lines), "Streak: 1")
	assert.Contains(t, printed(lines), "Novice Observer")

	records := app.history.Load(ctx, app.user)
	require.Len(t, records, 1)
	assert.True(t, records[0].IsChallenge)
}

func TestRegen_CreatesSecondRecord(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{}, "dust in a sunbeam", "")
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))
	first := *app.lastResult

	require.NoError(t, app.Regen(ctx))

	assert.NotEqual(t, first.ID, app.lastResult.ID)
	assert.Len(t, app.history.Load(ctx, nil), 2)
}

func TestLoginLogout_IdentitySwitchesHistory(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{},
		"guest observation", "", // guest observe
		"alex@example.com", // login email
	)
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))
	require.Len(t, app.history.Load(ctx, nil), 1)

	require.NoError(t, app.Login(ctx))
	require.NotNil(t, app.user)
	assert.Equal(t, "alex", app.user.Name)

	// The signed-in identity starts with its own empty history.
	assert.Empty(t, app.history.Load(ctx, app.user))

	require.NoError(t, app.Logout(ctx))
	assert.Nil(t, app.user)
	assert.Len(t, app.history.Load(ctx, nil), 1)
}

func TestLogin_RejectsNonEmail(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{}, "not-an-email")

	require.NoError(t, app.Login(context.Background()))
	assert.Nil(t, app.user)
	assert.Contains(t, printed(lines), "email")
}

func TestDeleteAccount_RequiresConfirmation(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{},
		"alex@example.com", // login
		"no",               // refuse confirmation
	)
	ctx := context.Background()

	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.DeleteAccount(ctx))

	// Refused confirmation leaves the account signed in.
	assert.NotNil(t, app.user)
}

func TestSettings_SetAndSaveRoundTrip(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{})
	ctx := context.Background()

	require.NoError(t, app.Settings(ctx, []string{"set", "style", "humorous"}))
	require.NoError(t, app.Settings(ctx, []string{"save"}))

	assert.Equal(t, models.StyleHumorous, app.settings.Load(ctx, nil).Style)
}

func TestSettings_RejectsInvalidValue(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{})

	require.NoError(t, app.Settings(context.Background(), []string{"set", "style", "bogus"}))
	assert.Contains(t, printed(lines), "must be one of")
	assert.Equal(t, models.StylePoetic, app.activeSettings.Style)
}

func TestChallenge_StartThenCancel(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{})
	ctx := context.Background()

	require.NoError(t, app.Challenge(ctx, "start"))
	require.NotNil(t, app.activeChallenge)

	require.NoError(t, app.Challenge(ctx, "cancel"))
	assert.Nil(t, app.activeChallenge)
}

func TestChallenge_StartRefusedWhenDoneToday(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{})

	app.user = models.NewUser("Alex", "alex@example.com")
	app.user.LastChallengeDate = nowFn().Format("2006-01-02")

	require.NoError(t, app.Challenge(context.Background(), "start"))
	assert.Nil(t, app.activeChallenge)
	assert.Contains(t, printed(lines), "Already completed today")
}

func TestExport_WritesFile(t *testing.T) {
	capturePrints(t)
	app := newTestApp(t, &fakeProvider{}, "an observation", "")
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, app.Export(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "an observation")
}

func TestShare_PrintsLinkAndOpenShowsCard(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{}, "a shared moment", "")
	ctx := context.Background()

	require.NoError(t, app.Observe(ctx, ""))
	id := app.lastResult.ID

	require.NoError(t, app.Share(ctx, id))
	var link string
	for _, l := range *lines {
		if strings.HasPrefix(l, "https://") {
			link = l
		}
	}
	require.NotEmpty(t, link)

	*lines = nil
	require.NoError(t, app.Open(ctx, link))
	out := printed(lines)
	assert.Contains(t, out, "Test Title")
	assert.Contains(t, out, "Shared from a friend.")
}

func TestTestEmail_ReportsDelivery(t *testing.T) {
	lines := capturePrints(t)
	app := newTestApp(t, &fakeProvider{})

	require.NoError(t, app.TestEmail(context.Background()))
	assert.Contains(t, printed(lines), "Sent weekly digest to guest@example.com")
}
