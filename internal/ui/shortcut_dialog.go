package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/quicklaunch/shortcuts/internal/form"
	"github.com/quicklaunch/shortcuts/internal/model"
)

// ShortcutDialog binds a form.Controller to the add/edit modal
type ShortcutDialog struct {
	window       fyne.Window
	localization *Localization
	ctrl         *form.Controller
	dialog       *dialog.CustomDialog

	// UI components
	nameEntry        *widget.Entry
	typeSelect       *widget.Select
	commandLabel     *widget.Label
	commandEntry     *widget.Entry
	browseBtn        *widget.Button
	scriptEntry      *widget.Entry
	shellSelect      *widget.Select
	argsEntry        *widget.Entry
	workingDirEntry  *widget.Entry
	descriptionEntry *widget.Entry
	hiddenCheck      *widget.Check
	adminCheck       *widget.Check
	errorLabel       *widget.Label

	groups map[form.Group]fyne.CanvasObject
}

// NewShortcutDialog creates the modal for an already opened controller
func NewShortcutDialog(window fyne.Window, localization *Localization, ctrl *form.Controller) *ShortcutDialog {
	sd := &ShortcutDialog{
		window:       window,
		localization: localization,
		ctrl:         ctrl,
	}
	sd.createUI()
	sd.loadInput()
	sd.applyLayout(ctrl.Layout())
	return sd
}

// Show displays the modal
func (sd *ShortcutDialog) Show() {
	sd.dialog.Show()
	sd.window.Canvas().Focus(sd.nameEntry)
}

func (sd *ShortcutDialog) text(key string) string {
	return sd.localization.GetText(key)
}

// createUI creates the modal widgets; handlers are bound after loadInput
func (sd *ShortcutDialog) createUI() {
	sd.nameEntry = widget.NewEntry()

	typeOptions := make([]string, 0, len(model.AllTypes()))
	for _, t := range model.AllTypes() {
		typeOptions = append(typeOptions, sd.text(TypeKey(t)))
	}
	sd.typeSelect = widget.NewSelect(typeOptions, nil)

	sd.commandLabel = widget.NewLabel("")
	sd.commandEntry = widget.NewEntry()
	sd.browseBtn = widget.NewButton(sd.text(KeyBrowse), sd.onBrowse)

	sd.scriptEntry = widget.NewMultiLineEntry()
	sd.scriptEntry.SetMinRowsVisible(5)
	sd.scriptEntry.TextStyle = fyne.TextStyle{Monospace: true}

	sd.shellSelect = widget.NewSelect(form.ShellKinds, nil)

	sd.argsEntry = widget.NewEntry()
	sd.workingDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(sd.text(KeyBrowse), sd.onBrowseWorkingDir)

	sd.descriptionEntry = widget.NewEntry()
	sd.hiddenCheck = widget.NewCheck(sd.text(KeyHidden), nil)
	sd.adminCheck = widget.NewCheck(sd.text(KeyAdmin), nil)

	sd.errorLabel = widget.NewLabel("")
	sd.errorLabel.Importance = widget.DangerImportance
	sd.errorLabel.Wrapping = fyne.TextWrapWord
	sd.errorLabel.Hide()

	sd.groups = map[form.Group]fyne.CanvasObject{
		form.GroupCommand: container.NewVBox(
			sd.commandLabel,
			container.NewBorder(nil, nil, nil, sd.browseBtn, sd.commandEntry),
		),
		form.GroupBrowseFile: sd.browseBtn,
		form.GroupScript:     container.NewVBox(widget.NewLabel(sd.text(KeyScript)), sd.scriptEntry),
		form.GroupShellKind:  container.NewVBox(widget.NewLabel(sd.text(KeyShell)), sd.shellSelect),
		form.GroupArgs:       container.NewVBox(widget.NewLabel(sd.text(KeyArgs)), sd.argsEntry),
		form.GroupWorkingDir: container.NewVBox(
			widget.NewLabel(sd.text(KeyWorkingDir)),
			container.NewBorder(nil, nil, nil, browseDirBtn, sd.workingDirEntry),
		),
		form.GroupHidden: sd.hiddenCheck,
	}

	content := container.NewVBox(
		widget.NewLabel(sd.text(KeyName)),
		sd.nameEntry,
		widget.NewLabel(sd.text(KeyType)),
		sd.typeSelect,
		sd.groups[form.GroupCommand],
		sd.groups[form.GroupScript],
		sd.groups[form.GroupShellKind],
		sd.groups[form.GroupArgs],
		sd.groups[form.GroupWorkingDir],
		widget.NewLabel(sd.text(KeyDescription)),
		sd.descriptionEntry,
		sd.groups[form.GroupHidden],
		sd.adminCheck,
		sd.errorLabel,
	)

	title := sd.text(KeyAddShortcut)
	if sd.ctrl.Mode() == form.ModeEdit {
		title = sd.text(KeyEditShortcut)
	}

	sd.dialog = dialog.NewCustomWithoutButtons(title, container.NewVScroll(content), sd.window)
	sd.dialog.SetButtons(sd.buttons())
	sd.dialog.SetOnClosed(sd.ctrl.Close)
	sd.dialog.Resize(fyne.NewSize(ShortcutDialogWidth, ShortcutDialogHeight))
}

func (sd *ShortcutDialog) buttons() []fyne.CanvasObject {
	cancelBtn := widget.NewButton(sd.text(KeyCancel), sd.dialog.Hide)

	saveBtn := widget.NewButton(sd.text(KeySave), sd.onSave)
	saveBtn.Importance = widget.HighImportance

	if !sd.ctrl.CanDelete() {
		return []fyne.CanvasObject{cancelBtn, saveBtn}
	}

	deleteBtn := widget.NewButton(sd.text(KeyDelete), sd.onDelete)
	deleteBtn.Importance = widget.DangerImportance
	return []fyne.CanvasObject{deleteBtn, cancelBtn, saveBtn}
}

// loadInput copies the controller buffer into the widgets, then binds them
func (sd *ShortcutDialog) loadInput() {
	in := sd.ctrl.Input()

	sd.nameEntry.SetText(in.Name)
	sd.commandEntry.SetText(in.Command)
	sd.scriptEntry.SetText(in.Script)
	sd.argsEntry.SetText(in.Args)
	sd.workingDirEntry.SetText(in.WorkingDir)
	sd.descriptionEntry.SetText(in.Description)
	sd.shellSelect.SetSelected(in.ShellKind)
	sd.hiddenCheck.SetChecked(in.Hidden)
	sd.adminCheck.SetChecked(in.Admin)
	sd.typeSelect.SetSelectedIndex(typeIndex(in.Type))

	bindText := func(e *widget.Entry, field model.Field) {
		e.OnChanged = func(v string) { sd.setText(field, v) }
	}
	bindText(sd.nameEntry, model.FieldName)
	bindText(sd.commandEntry, model.FieldCommand)
	bindText(sd.scriptEntry, model.FieldScript)
	bindText(sd.argsEntry, model.FieldArgs)
	bindText(sd.workingDirEntry, model.FieldWorkingDir)
	bindText(sd.descriptionEntry, model.FieldDescription)
	sd.shellSelect.OnChanged = func(v string) { sd.setText(model.FieldShellKind, v) }

	sd.hiddenCheck.OnChanged = func(b bool) { sd.setFlag(model.FieldHidden, b) }
	sd.adminCheck.OnChanged = func(b bool) { sd.setFlag(model.FieldAdmin, b) }

	sd.typeSelect.OnChanged = func(string) {
		i := sd.typeSelect.SelectedIndex()
		types := model.AllTypes()
		if i < 0 || i >= len(types) {
			return
		}
		sd.applyLayout(sd.ctrl.SetType(types[i]))
	}
}

func (sd *ShortcutDialog) setText(field model.Field, v string) {
	if err := sd.ctrl.SetText(field, v); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (sd *ShortcutDialog) setFlag(field model.Field, b bool) {
	if err := sd.ctrl.SetFlag(field, b); err != nil {
		log.Printf("Warning: %v", err)
	}
}

// applyLayout shows exactly the groups the layout names
func (sd *ShortcutDialog) applyLayout(l form.Layout) {
	sd.commandLabel.SetText(sd.text(LabelKey(l.PrimaryLabel)))
	sd.commandEntry.SetPlaceHolder(l.Placeholder)

	for g, obj := range sd.groups {
		if l.Shows(g) {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
	sd.errorLabel.Hide()
}

func typeIndex(t model.ShortcutType) int {
	for i, candidate := range model.AllTypes() {
		if candidate == model.ParseType(string(t)) {
			return i
		}
	}
	return 0
}

// onBrowse opens the picker for the primary field
func (sd *ShortcutDialog) onBrowse() {
	if sd.ctrl.Layout().BrowseFolder {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			sd.applyPick(form.PickFolder, uri.Path())
		}, sd.window)
		return
	}

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		sd.applyPick(form.PickFile, path)
	}, sd.window)
	if exts := form.FileFilter(sd.ctrl.Input().Type); len(exts) > 0 {
		fd.SetFilter(storage.NewExtensionFileFilter(exts))
	}
	fd.Show()
}

// onBrowseWorkingDir opens the folder picker for the working directory
func (sd *ShortcutDialog) onBrowseWorkingDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.applyPick(form.PickFolder, uri.Path())
	}, sd.window)
}

func (sd *ShortcutDialog) applyPick(picker form.Picker, path string) {
	field, ok := sd.ctrl.ApplyPick(picker, path)
	if !ok {
		return
	}
	switch field {
	case model.FieldWorkingDir:
		sd.workingDirEntry.SetText(path)
	case model.FieldCommand:
		sd.commandEntry.SetText(path)
	}
}

// onSave submits the buffer; the modal stays open on any failure
func (sd *ShortcutDialog) onSave() {
	_, err := sd.ctrl.Submit(context.Background())
	if err == nil {
		sd.dialog.Hide()
		return
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		sd.showValidation(verr)
		return
	}

	dialog.ShowError(fmt.Errorf("%s: %w", sd.text(KeySaveFailed), err), sd.window)
}

func (sd *ShortcutDialog) showValidation(verr *model.ValidationError) {
	msg := sd.text(KeyValidationField)
	switch verr.Field {
	case model.FieldName:
		msg = sd.text(KeyValidationName)
		sd.window.Canvas().Focus(sd.nameEntry)
	case model.FieldScript:
		msg = sd.text(KeyScript) + ": " + msg
		sd.window.Canvas().Focus(sd.scriptEntry)
	default:
		msg = sd.text(LabelKey(sd.ctrl.Layout().PrimaryLabel)) + ": " + msg
		sd.window.Canvas().Focus(sd.commandEntry)
	}
	sd.errorLabel.SetText(msg)
	sd.errorLabel.Show()
}

// onDelete confirms and deletes the bound entry
func (sd *ShortcutDialog) onDelete() {
	asker := &dialogAsker{window: sd.window, localization: sd.localization}
	sd.ctrl.RequestDelete(context.Background(), asker, func(deleted bool, err error) {
		// failures stay in the log and leave the modal open
		if deleted {
			sd.dialog.Hide()
		}
	})
}

// dialogAsker implements form.Asker with a native confirm dialog
type dialogAsker struct {
	window       fyne.Window
	localization *Localization
}

var confirmTextKeys = map[string]string{
	form.ConfirmDeleteTitle:   KeyConfirmDelete,
	form.ConfirmDeleteMessage: KeyConfirmDeleteMsg,
}

func (a *dialogAsker) translate(s string) string {
	if key, ok := confirmTextKeys[s]; ok {
		return a.localization.GetText(key)
	}
	return s
}

// Confirm implements form.Asker
func (a *dialogAsker) Confirm(title, message string, onResult func(bool)) {
	dialog.ShowConfirm(a.translate(title), a.translate(message), onResult, a.window)
}
