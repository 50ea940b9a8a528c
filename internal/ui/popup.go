package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/quicklaunch/shortcuts/internal/backend"
	"github.com/quicklaunch/shortcuts/internal/config"
	"github.com/quicklaunch/shortcuts/internal/model"
)

// QuickLaunchUI is the tray popup listing shortcuts for launch
type QuickLaunchUI struct {
	window       fyne.Window
	backend      backend.Backend
	settings     *config.Settings
	localization *Localization

	list        *fyne.Container
	unsubscribe func()
}

// NewQuickLaunchUI builds the popup content into window and subscribes to reloads
func NewQuickLaunchUI(window fyne.Window, b backend.Backend, settings *config.Settings, localization *Localization) *QuickLaunchUI {
	q := &QuickLaunchUI{
		window:       window,
		backend:      b,
		settings:     settings,
		localization: localization,
		list:         container.NewVBox(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(settings.GetPopupSize())
	window.SetContent(container.NewVScroll(q.list))

	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			q.hide()
		}
	})

	q.unsubscribe = b.Subscribe(q.Reload)
	return q
}

// Reload fetches the list and re-renders. Safe to call from any goroutine.
func (q *QuickLaunchUI) Reload() {
	list, err := q.backend.GetShortcuts(context.Background())
	if err != nil {
		log.Printf("Failed to load shortcuts for launcher: %v", err)
	}
	fyne.Do(func() {
		q.render(list, err)
	})
}

// Close stops listening for reloads
func (q *QuickLaunchUI) Close() {
	if q.unsubscribe != nil {
		q.unsubscribe()
		q.unsubscribe = nil
	}
}

func (q *QuickLaunchUI) render(list []model.Shortcut, loadErr error) {
	q.list.Objects = renderQuickLaunchItems(list, loadErr, q.localization, q.launch)
	q.list.Refresh()
}

// renderQuickLaunchItems returns one item per shortcut, or exactly one
// placeholder when the list is empty or failed to load
func renderQuickLaunchItems(list []model.Shortcut, loadErr error, localization *Localization, onLaunch func(model.Shortcut)) []fyne.CanvasObject {
	if loadErr != nil {
		return []fyne.CanvasObject{
			newEmptyState(IconError, localization.GetText(KeyError), localization.GetText(KeyLoadFailed)),
		}
	}
	if len(list) == 0 {
		return []fyne.CanvasObject{
			newEmptyState(IconEmpty, localization.GetText(KeyNoShortcuts), localization.GetText(KeyNoShortcutsHint)),
		}
	}

	items := make([]fyne.CanvasObject, 0, len(list))
	for _, s := range list {
		s := s
		items = append(items, newLaunchItem(s, localization, func() {
			if onLaunch != nil {
				onLaunch(s)
			}
		}))
	}
	return items
}

// launch starts s off the UI goroutine and hides the popup when configured to
func (q *QuickLaunchUI) launch(s model.Shortcut) {
	hideAfter := q.settings.GetHideAfterLaunch()
	go func() {
		if err := q.backend.LaunchShortcut(context.Background(), s); err != nil {
			log.Printf("Failed to launch %q: %v", s.Name, err)
			fyne.Do(func() {
				dialog.ShowError(fmt.Errorf("%s: %w", q.localization.GetText(KeyLaunchFailed), err), q.window)
			})
			return
		}
		if hideAfter {
			q.hide()
		}
	}()
}

func (q *QuickLaunchUI) hide() {
	if err := q.backend.HideWindow(context.Background()); err != nil {
		log.Printf("Warning: failed to hide launcher: %v", err)
	}
}
