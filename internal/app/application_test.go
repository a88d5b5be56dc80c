package app

import (
	"context"
	"path/filepath"
	"testing"

	"contact-manager/internal/config"
	"contact-manager/internal/logger"
	"contact-manager/internal/models"
	"contact-manager/internal/store"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(t.TempDir(), "contacts.db")
	return &cfg
}

func TestNewApplication_WiresStoreAndWindow(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()
	cfg := testConfig(t)

	application, err := newApplication(context.Background(), fyneApp, cfg, logger.Nop())
	require.NoError(t, err)
	defer application.Close()

	assert.Equal(t, AppName, application.window.Title())
	assert.Equal(t, cfg.Database.Path, application.store.Path())

	application.view.SetFields(models.ContactFields{Name: "Amy", Phone: "456"})
	application.controller.Add()
	assert.Len(t, application.view.GetContactList().Entries(), 1)
}

func TestApplication_CloseReleasesStoreOnce(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()
	cfg := testConfig(t)

	application, err := newApplication(context.Background(), fyneApp, cfg, logger.Nop())
	require.NoError(t, err)
	application.view.SetFields(models.ContactFields{Name: "Amy", Phone: "456"})
	application.controller.Add()

	application.Close()
	application.Close()

	select {
	case <-application.lifecycle.Done():
	default:
		t.Fatal("lifecycle not shut down")
	}

	_, err = application.store.Count(context.Background())
	assert.Error(t, err, "store must be closed")

	reopened, err := store.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer reopened.Close()
	n, err := reopened.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewApplication_BadDatabasePath(t *testing.T) {
	fyneApp := test.NewApp()
	defer fyneApp.Quit()
	cfg := testConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "no", "such", "dir", "contacts.db")

	_, err := newApplication(context.Background(), fyneApp, cfg, logger.Nop())

	assert.Error(t, err)
}
