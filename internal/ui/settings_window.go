package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/backend"
	"github.com/quicklaunch/shortcuts/internal/config"
	"github.com/quicklaunch/shortcuts/internal/drag"
	"github.com/quicklaunch/shortcuts/internal/form"
	"github.com/quicklaunch/shortcuts/internal/model"
	"github.com/quicklaunch/shortcuts/internal/store"
)

// Toast notification constants
const (
	SettingsToastWidth  = 280
	SettingsToastHeight = 60
	SettingsToastMargin = 16
)

// Default export file name offered by the save dialog
const DefaultExportFileName = "shortcuts-backup.json"

// SettingsUI is the settings editor window: the reorderable shortcut list
// plus general options
type SettingsUI struct {
	window       fyne.Window
	backend      backend.Backend
	store        *store.Store
	settings     *config.Settings
	localization *Localization

	form     *form.Controller
	dragView *listDragView
	drag     *drag.Controller

	rows    []*ShortcutRow
	listBox *fyne.Container

	autostartCheck *widget.Check
	unsubscribe    func()

	// onLanguageChange lets the owner rebuild other windows
	onLanguageChange func()
}

// NewSettingsUI builds the editor into window
func NewSettingsUI(window fyne.Window, b backend.Backend, settings *config.Settings, localization *Localization) *SettingsUI {
	s := &SettingsUI{
		window:       window,
		backend:      b,
		store:        store.New(b),
		settings:     settings,
		localization: localization,
		listBox:      container.NewVBox(),
	}

	s.form = form.NewController(s.store)
	s.dragView = newListDragView(window.Canvas(), localization, func() []*ShortcutRow { return s.rows })
	s.drag = drag.NewController(s.dragView, s.store)

	s.store.SetChangeCallback(s.renderList)

	window.SetTitle(localization.GetText(KeySettingsTitle))
	window.Resize(fyne.NewSize(SettingsWindowWidth, SettingsWindowHeight))
	window.SetCloseIntercept(window.Hide)

	s.setupUI()

	s.unsubscribe = b.Subscribe(func() {
		fyne.Do(s.reload)
	})
	return s
}

// SetLanguageChangeCallback is called after the preferences change the language
func (s *SettingsUI) SetLanguageChangeCallback(callback func()) {
	s.onLanguageChange = callback
}

// Show loads the list and brings the window up
func (s *SettingsUI) Show() {
	s.reload()
	s.refreshAutostart()
	s.window.Show()
	s.window.RequestFocus()
}

// Close stops listening for reloads
func (s *SettingsUI) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// setupUI creates the tabs
func (s *SettingsUI) setupUI() {
	tabs := container.NewAppTabs(
		container.NewTabItem(s.localization.GetText(KeyTabShortcuts), s.createShortcutsTab()),
		container.NewTabItem(s.localization.GetText(KeyTabGeneral), s.createGeneralTab()),
	)
	s.window.SetContent(tabs)
}

func (s *SettingsUI) createShortcutsTab() fyne.CanvasObject {
	addBtn := widget.NewButton(s.localization.GetText(KeyAddShortcut), s.onAdd)
	addBtn.Importance = widget.HighImportance

	prefsBtn := widget.NewButton(IconSettings, s.onShowPreferences)
	prefsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, container.NewHBox(prefsBtn, addBtn))
	return container.NewBorder(header, nil, nil, nil, container.NewVScroll(s.listBox))
}

func (s *SettingsUI) createGeneralTab() fyne.CanvasObject {
	s.autostartCheck = widget.NewCheck(s.localization.GetText(KeyAutostart), nil)

	exportBtn := widget.NewButton(s.localization.GetText(KeyExport), s.onExport)
	importBtn := widget.NewButton(s.localization.GetText(KeyImport), s.onImport)
	prefsBtn := widget.NewButton(s.localization.GetText(KeyPreferences), s.onShowPreferences)

	return container.NewVBox(
		s.autostartCheck,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(s.localization.GetText(KeyBackup), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(exportBtn, importBtn),
		widget.NewSeparator(),
		prefsBtn,
	)
}

// reload refreshes the cache; renderList runs from the store callback. A
// failed load is only logged by the store and the rows stay as they were.
func (s *SettingsUI) reload() {
	_ = s.store.Load(context.Background())
}

// renderList rebuilds one row per shortcut. Runs on the UI goroutine.
func (s *SettingsUI) renderList(list []model.Shortcut) {
	s.rows = s.rows[:0]
	if len(list) == 0 {
		s.listBox.Objects = []fyne.CanvasObject{
			newEmptyState(IconEmpty, s.localization.GetText(KeyNoShortcuts), s.localization.GetText(KeyEmptyListHint)),
		}
		s.listBox.Refresh()
		return
	}

	objects := make([]fyne.CanvasObject, 0, len(list))
	for i, sc := range list {
		row := NewShortcutRow(i, sc, s.localization)
		row.SetCallbacks(s.onEdit, s.onDelete)
		row.SetDragCallbacks(s.onHandleDragged, s.onHandleDragEnd)
		s.rows = append(s.rows, row)
		objects = append(objects, row)
	}
	s.listBox.Objects = objects
	s.listBox.Refresh()
}

func (s *SettingsUI) onAdd() {
	s.form.OpenCreate()
	NewShortcutDialog(s.window, s.localization, s.form).Show()
}

func (s *SettingsUI) onEdit(index int) {
	sc, ok := s.store.At(index)
	if !ok {
		log.Printf("Warning: edit requested for missing shortcut %d", index)
		return
	}
	s.form.OpenEdit(index, sc)
	NewShortcutDialog(s.window, s.localization, s.form).Show()
}

// onDelete confirms and deletes straight from the row
func (s *SettingsUI) onDelete(index int) {
	sc, ok := s.store.At(index)
	if !ok {
		return
	}
	s.form.OpenEdit(index, sc)
	asker := &dialogAsker{window: s.window, localization: s.localization}
	s.form.RequestDelete(context.Background(), asker, func(deleted bool, err error) {
		if !deleted {
			s.form.Close()
		}
	})
}

// onHandleDragged starts the gesture on the first event and moves it after
func (s *SettingsUI) onHandleDragged(index int, ev *fyne.DragEvent) {
	if s.drag.State() == drag.StateIdle {
		press := ev.AbsolutePosition.Subtract(ev.Dragged)
		if err := s.drag.Begin(index, press); err != nil {
			log.Printf("Warning: cannot start drag on %d: %v", index, err)
			return
		}
	}
	if !s.dragView.listening {
		return
	}
	s.dragView.lastPointer = ev.AbsolutePosition
	s.drag.Move(ev.AbsolutePosition)
}

// onHandleDragEnd drops; a failed reorder is logged by the controller and
// the list keeps its previous order
func (s *SettingsUI) onHandleDragEnd(int) {
	if !s.dragView.listening {
		return
	}
	_ = s.drag.End(context.Background(), s.dragView.lastPointer)
}

// refreshAutostart reads the current state without firing the toggle handler
func (s *SettingsUI) refreshAutostart() {
	enabled, err := s.backend.GetAutostart(context.Background())
	if err != nil {
		log.Printf("Warning: failed to read autostart: %v", err)
	}
	s.setAutostartChecked(enabled)
	s.autostartCheck.OnChanged = s.onAutostartToggled
}

func (s *SettingsUI) setAutostartChecked(checked bool) {
	handler := s.autostartCheck.OnChanged
	s.autostartCheck.OnChanged = nil
	s.autostartCheck.SetChecked(checked)
	s.autostartCheck.OnChanged = handler
}

// onAutostartToggled applies the change and reverts the checkbox on failure
func (s *SettingsUI) onAutostartToggled(enabled bool) {
	if err := s.backend.SetAutostart(context.Background(), enabled); err != nil {
		log.Printf("Failed to set autostart to %v: %v", enabled, err)
		s.setAutostartChecked(!enabled)
		dialog.ShowError(fmt.Errorf("%s: %w", s.localization.GetText(KeyAutostartFailed), err), s.window)
	}
}

func (s *SettingsUI) onExport() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := s.backend.ExportConfig(context.Background(), path); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", s.localization.GetText(KeyExportFailed), err), s.window)
			return
		}
		s.showToast(s.localization.GetText(KeyExported))
	}, s.window)
	fd.SetFileName(DefaultExportFileName)
	fd.Show()
}

func (s *SettingsUI) onImport() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := s.backend.ImportConfig(context.Background(), path); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", s.localization.GetText(KeyImportFailed), err), s.window)
			return
		}
		s.showToast(s.localization.GetText(KeyImported))
	}, s.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json", ".yaml", ".yml"}))
	fd.Show()
}

func (s *SettingsUI) onShowPreferences() {
	ShowPreferencesDialog(s.window, s.settings, s.localization, func(languageChanged bool) {
		if languageChanged {
			s.setupUI()
			s.reload()
			s.refreshAutostart()
			if s.onLanguageChange != nil {
				s.onLanguageChange()
			}
		}
		s.showToast(s.localization.GetText(KeySettingsSaved))
	})
}

// showToast shows a short message in the top-right corner
func (s *SettingsUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	toast := widget.NewPopUp(container.NewPadded(label), s.window.Canvas())

	canvasSize := s.window.Canvas().Size()
	toastSize := fyne.NewSize(SettingsToastWidth, SettingsToastHeight)
	toast.Resize(toastSize)
	toast.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-SettingsToastMargin, SettingsToastMargin))

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(toast.Hide)
	}()
}
