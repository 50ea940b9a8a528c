package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/quicklaunch/shortcuts/internal/backend"
	"github.com/quicklaunch/shortcuts/internal/config"
)

// HideSetter is implemented by backends that can hide the launcher window
type HideSetter interface {
	SetHideFunc(hide func())
}

// App owns the launcher popup, the settings window and the tray menu
type App struct {
	fyneApp      fyne.App
	backend      backend.Backend
	settings     *config.Settings
	localization *Localization

	launcherWindow fyne.Window
	launcher       *QuickLaunchUI

	settingsWindow fyne.Window
	settingsUI     *SettingsUI
}

// NewApp creates the windows over b. Nothing is shown until Run.
func NewApp(fyneApp fyne.App, b backend.Backend, settings *config.Settings) *App {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	fyneApp.SetIcon(appIcon())

	a := &App{
		fyneApp:      fyneApp,
		backend:      b,
		settings:     settings,
		localization: localization,
	}

	a.launcherWindow = fyneApp.NewWindow(localization.GetText(KeyAppTitle))
	a.launcherWindow.SetFixedSize(true)
	a.launcherWindow.SetCloseIntercept(a.launcherWindow.Hide)
	a.launcher = NewQuickLaunchUI(a.launcherWindow, b, settings, localization)

	if hs, ok := b.(HideSetter); ok {
		hs.SetHideFunc(func() {
			fyne.Do(a.launcherWindow.Hide)
		})
	}

	a.setupTray()
	return a
}

// ShowLauncher reloads and shows the quick-launch popup
func (a *App) ShowLauncher() {
	a.launcher.Reload()
	a.launcherWindow.Resize(a.settings.GetPopupSize())
	a.launcherWindow.Show()
	a.launcherWindow.RequestFocus()
}

// ShowSettings opens the settings editor, creating it on first use
func (a *App) ShowSettings() {
	if a.settingsUI == nil {
		a.settingsWindow = a.fyneApp.NewWindow(a.localization.GetText(KeySettingsTitle))
		a.settingsUI = NewSettingsUI(a.settingsWindow, a.backend, a.settings, a.localization)
		a.settingsUI.SetLanguageChangeCallback(a.onLanguageChange)
	}
	a.settingsUI.Show()
}

// Run shows the first window and blocks until Quit
func (a *App) Run(showSettings bool) {
	if showSettings {
		a.ShowSettings()
	} else {
		a.ShowLauncher()
	}
	a.fyneApp.Run()

	a.launcher.Close()
	if a.settingsUI != nil {
		a.settingsUI.Close()
	}
}

// setupTray installs the tray menu on desktop drivers
func (a *App) setupTray() {
	desk, ok := a.fyneApp.(desktop.App)
	if !ok {
		log.Printf("Warning: system tray is not supported by this driver")
		return
	}

	openItem := fyne.NewMenuItem(a.localization.GetText(KeyOpenLauncher), a.ShowLauncher)
	settingsItem := fyne.NewMenuItem(a.localization.GetText(KeySettings), a.ShowSettings)
	quitItem := fyne.NewMenuItem(a.localization.GetText(KeyQuit), a.fyneApp.Quit)
	quitItem.IsQuit = true

	desk.SetSystemTrayMenu(fyne.NewMenu(a.localization.GetText(KeyAppTitle), openItem, settingsItem, fyne.NewMenuItemSeparator(), quitItem))
	desk.SetSystemTrayIcon(appIcon())
}

// onLanguageChange re-labels everything built outside the settings window
func (a *App) onLanguageChange() {
	a.launcherWindow.SetTitle(a.localization.GetText(KeyAppTitle))
	a.settingsWindow.SetTitle(a.localization.GetText(KeySettingsTitle))
	a.setupTray()
	a.launcher.Reload()
}
