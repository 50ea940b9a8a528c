package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/config"
)

// PreferencesDialog edits the per-user preferences kept in fyne storage
type PreferencesDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(languageChanged bool)

	// UI components
	configPathEntry *widget.Entry
	languageSelect  *widget.Select
	widthEntry      *widget.Entry
	heightEntry     *widget.Entry
	hideCheck       *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowPreferencesDialog opens the preferences and calls onSaved after a save
func ShowPreferencesDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(languageChanged bool)) {
	pd := NewPreferencesDialog(settings, localization, window)
	pd.onSaved = onSaved
	pd.Show()
}

// NewPreferencesDialog creates a new preferences dialog
func NewPreferencesDialog(settings *config.Settings, localization *Localization, window fyne.Window) *PreferencesDialog {
	pd := &PreferencesDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	pd.createUI()
	return pd
}

// Show displays the preferences dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentSettings()
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	t := pd.localization.GetText

	// Config file selection
	pd.configPathEntry = widget.NewEntry()
	pd.configPathEntry.SetPlaceHolder(config.DefaultConfigPath())
	browseBtn := widget.NewButton(t(KeyBrowse), pd.onBrowseConfig)
	configRow := container.NewBorder(nil, nil, nil, browseBtn, pd.configPathEntry)

	// Language selection, shown by display name
	pd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range pd.settings.GetLanguageOptions() {
		pd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	pd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Popup size
	pd.widthEntry = widget.NewEntry()
	pd.widthEntry.SetPlaceHolder(strconv.Itoa(config.DefaultPopupWidth))
	pd.heightEntry = widget.NewEntry()
	pd.heightEntry.SetPlaceHolder(strconv.Itoa(config.DefaultPopupHeight))
	sizeRow := container.NewGridWithColumns(2, pd.widthEntry, pd.heightEntry)

	pd.hideCheck = widget.NewCheck(t(KeyHideAfterLaunch), nil)

	content := container.NewVBox(
		widget.NewLabel(t(KeyConfigFile)+":"),
		configRow,

		widget.NewLabel(t(KeyLanguage)+":"),
		pd.languageSelect,

		widget.NewLabel(t(KeyPopupSize)+":"),
		sizeRow,

		pd.hideCheck,
	)

	pd.dialog = dialog.NewCustomConfirm(
		t(KeyPreferences),
		t(KeySave),
		t(KeyCancel),
		content,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(PreferencesDialogWidth, PreferencesDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (pd *PreferencesDialog) loadCurrentSettings() {
	pd.configPathEntry.SetText(pd.settings.GetConfigPath())

	current := pd.settings.GetLanguage()
	for name, code := range pd.languageCodes {
		if code == current {
			pd.languageSelect.SetSelected(name)
		}
	}

	size := pd.settings.GetPopupSize()
	pd.widthEntry.SetText(strconv.Itoa(int(size.Width)))
	pd.heightEntry.SetText(strconv.Itoa(int(size.Height)))

	pd.hideCheck.SetChecked(pd.settings.GetHideAfterLaunch())
}

// onBrowseConfig picks a config file
func (pd *PreferencesDialog) onBrowseConfig() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		pd.configPathEntry.SetText(reader.URI().Path())
		reader.Close()
	}, pd.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	fd.Show()
}

// onSave handles saving the preferences
func (pd *PreferencesDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Config path takes effect on the next start
	pathChanged := false
	if path := pd.configPathEntry.Text; path != "" && path != pd.settings.GetConfigPath() {
		pd.settings.SetConfigPath(path)
		pathChanged = true
	}

	languageChanged := false
	if code, ok := pd.languageCodes[pd.languageSelect.Selected]; ok && code != pd.settings.GetLanguage() {
		pd.settings.SetLanguage(code)
		pd.localization.SetLanguage(code)
		languageChanged = true
	}

	size := pd.settings.GetPopupSize()
	width, height := int(size.Width), int(size.Height)
	if w, err := strconv.Atoi(pd.widthEntry.Text); err == nil {
		width = w
	}
	if h, err := strconv.Atoi(pd.heightEntry.Text); err == nil {
		height = h
	}
	pd.settings.SetPopupSize(width, height)

	pd.settings.SetHideAfterLaunch(pd.hideCheck.Checked)

	if pathChanged {
		dialog.ShowInformation(pd.localization.GetText(KeyPreferences), pd.localization.GetText(KeyRestartRequired), pd.window)
	}

	if pd.onSaved != nil {
		pd.onSaved(languageChanged)
	}
}
