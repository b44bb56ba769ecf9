package web_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"

	web "workout/internal/adapters/http"
	"workout/internal/adapters/http/perf"
	"workout/internal/adapters/storage"
	accountStore "workout/internal/adapters/storage/account"
	noteStore "workout/internal/adapters/storage/note"
	ratingStore "workout/internal/adapters/storage/rating"
)

// browserApp holds the running test server and Playwright handles.
type browserApp struct {
	BaseURL string
	Browser playwright.Browser
}

// newBrowserApp starts the fully wired app on a temp SQLite file and a headless Chromium.
// The test is skipped when Playwright's driver or browsers are not installed.
func newBrowserApp(t *testing.T) *browserApp {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test DB: %v", err)
	}
	if err := storage.MigrateDB(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate test DB: %v", err)
	}

	timed := storage.NewTimedDB(db, nil, 0)
	stores := &web.Stores{
		AccountStore: accountStore.NewSQLiteStore(timed),
		NoteStore:    noteStore.NewSQLiteStore(timed),
		RatingStore:  ratingStore.NewSQLiteStore(timed),
	}
	handler, err := web.NewMux(stores, web.Options{Collector: perf.NewCollector(0), RateLimit: 1000})
	if err != nil {
		t.Fatalf("NewMux: %v", err)
	}
	srv := httptest.NewServer(handler)

	pw, err := playwright.Run()
	if err != nil {
		srv.Close()
		db.Close()
		t.Skipf("playwright unavailable: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		srv.Close()
		db.Close()
		t.Skipf("chromium unavailable: %v", err)
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
		db.Close()
	})
	return &browserApp{BaseURL: srv.URL, Browser: browser}
}

// newPage creates a new browser page (tab).
func (a *browserApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

func fill(t *testing.T, page playwright.Page, selector, value string) {
	t.Helper()
	if err := page.Locator(selector).Fill(value); err != nil {
		t.Fatalf("failed to fill %s: %v", selector, err)
	}
}

func click(t *testing.T, page playwright.Page, selector string) {
	t.Helper()
	if err := page.Locator(selector).Click(); err != nil {
		t.Fatalf("failed to click %s: %v", selector, err)
	}
}

func waitForURL(t *testing.T, page playwright.Page, url string) {
	t.Helper()
	if err := page.WaitForURL(url, playwright.PageWaitForURLOptions{Timeout: playwright.Float(10000)}); err != nil {
		t.Fatalf("did not reach %s: %v", url, err)
	}
}

func textOf(t *testing.T, page playwright.Page, selector string) string {
	t.Helper()
	text, err := page.Locator(selector).TextContent()
	if err != nil {
		t.Fatalf("failed to read %s: %v", selector, err)
	}
	return strings.TrimSpace(text)
}

// TestBrowser_PersonalPlanJourney walks a visitor from registration to a classified plan.
func TestBrowser_PersonalPlanJourney(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	app := newBrowserApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/register"); err != nil {
		t.Fatalf("failed to open register: %v", err)
	}
	fill(t, page, "#username", "casey")
	fill(t, page, "#email", "casey@example.com")
	fill(t, page, "#password", "correct horse")
	click(t, page, "button[type=submit]")
	waitForURL(t, page, app.BaseURL+"/login")

	fill(t, page, "#username", "casey")
	fill(t, page, "#password", "correct horse")
	click(t, page, "main button[type=submit]")
	waitForURL(t, page, app.BaseURL+"/dashboard")
	if got := textOf(t, page, "#username"); got != "casey" {
		t.Errorf("dashboard username = %q", got)
	}

	if _, err := page.Goto(app.BaseURL + "/"); err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	fill(t, page, "#age", "40")
	if _, err := page.Locator("#gender").SelectOption(playwright.SelectOptionValues{Values: &[]string{"male"}}); err != nil {
		t.Fatalf("failed to select gender: %v", err)
	}
	click(t, page, "#personal-exercise")
	waitForURL(t, page, app.BaseURL+"/personal")
	if got := textOf(t, page, "#special-message"); got != "You are an older male adult." {
		t.Errorf("special message = %q", got)
	}

	fill(t, page, "#weight", "85")
	fill(t, page, "#height", "170")
	click(t, page, "#measurements button[type=submit]")
	if err := page.Locator("#category").WaitFor(); err != nil {
		t.Fatalf("no result rendered: %v", err)
	}
	if got := textOf(t, page, "#category"); got != "Overweight" {
		t.Errorf("category = %q, want Overweight", got)
	}

	click(t, page, "#logout")
	waitForURL(t, page, app.BaseURL+"/")
}
