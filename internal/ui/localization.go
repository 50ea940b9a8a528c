package ui

import (
	"github.com/quicklaunch/shortcuts/internal/form"
	"github.com/quicklaunch/shortcuts/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettingsTitle    = "settings_title"
	KeyOpenLauncher     = "open_launcher"
	KeySettings         = "settings"
	KeyQuit             = "quit"
	KeyTabShortcuts     = "tab_shortcuts"
	KeyTabGeneral       = "tab_general"
	KeyAddShortcut      = "add_shortcut"
	KeyEditShortcut     = "edit_shortcut"
	KeyNoShortcuts      = "no_shortcuts"
	KeyNoShortcutsHint  = "no_shortcuts_hint"
	KeyEmptyListHint    = "empty_list_hint"
	KeyLoadFailed       = "load_failed"
	KeyName             = "name"
	KeyType             = "type"
	KeyShell            = "shell"
	KeyArgs             = "args"
	KeyWorkingDir       = "working_dir"
	KeyDescription      = "description"
	KeyHidden           = "hidden"
	KeyAdmin            = "admin"
	KeyAdminBadge       = "admin_badge"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyDelete           = "delete"
	KeyEdit             = "edit"
	KeyBrowse           = "browse"
	KeyConfirmDelete    = "confirm_delete"
	KeyConfirmDeleteMsg = "confirm_delete_msg"
	KeySaveFailed       = "save_failed"
	KeyLaunchFailed     = "launch_failed"
	KeyValidationName   = "validation_name"
	KeyValidationField  = "validation_field"
	KeyAutostart        = "autostart"
	KeyAutostartFailed  = "autostart_failed"
	KeyExport           = "export"
	KeyImport           = "import"
	KeyExported         = "exported"
	KeyImported         = "imported"
	KeyExportFailed     = "export_failed"
	KeyImportFailed     = "import_failed"
	KeyBackup           = "backup"
	KeyPreferences      = "preferences"
	KeyLanguage         = "language"
	KeyConfigFile       = "config_file"
	KeyPopupSize        = "popup_size"
	KeyHideAfterLaunch  = "hide_after_launch"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyError            = "error"

	// Primary field labels, one per form.Label
	KeyExecutablePath = "executable_path"
	KeyURL            = "url"
	KeyFilePath       = "file_path"
	KeyFolderPath     = "folder_path"
	KeyScriptFilePath = "script_file_path"
	KeyScript         = "script"
)

// typeKeyPrefix + type token names the type in the type selector
const typeKeyPrefix = "type_"

// TypeKey returns the text key naming t
func TypeKey(t model.ShortcutType) string {
	return typeKeyPrefix + string(model.ParseType(string(t)))
}

// LabelKey returns the text key for a form primary-field label
func LabelKey(l form.Label) string {
	switch l {
	case form.LabelURL:
		return KeyURL
	case form.LabelFilePath:
		return KeyFilePath
	case form.LabelFolderPath:
		return KeyFolderPath
	case form.LabelScriptFilePath:
		return KeyScriptFilePath
	case form.LabelScript:
		return KeyScript
	default:
		return KeyExecutablePath
	}
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Shortcuts",
		KeySettingsTitle:    "Shortcuts Settings",
		KeyOpenLauncher:     "Open Launcher",
		KeySettings:         "Settings",
		KeyQuit:             "Quit",
		KeyTabShortcuts:     "Shortcuts",
		KeyTabGeneral:       "General",
		KeyAddShortcut:      "Add Shortcut",
		KeyEditShortcut:     "Edit Shortcut",
		KeyNoShortcuts:      "No shortcuts yet",
		KeyNoShortcutsHint:  "Right-click the tray icon and open Settings to add some.",
		KeyEmptyListHint:    "Click \"Add Shortcut\" to create your first one.",
		KeyLoadFailed:       "Failed to load shortcuts. Check config file format.",
		KeyName:             "Name",
		KeyType:             "Type",
		KeyShell:            "Shell",
		KeyArgs:             "Arguments",
		KeyWorkingDir:       "Working Directory",
		KeyDescription:      "Description",
		KeyHidden:           "Run hidden",
		KeyAdmin:            "Run as administrator",
		KeyAdminBadge:       "Admin",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyDelete:           "Delete",
		KeyEdit:             "Edit",
		KeyBrowse:           "Browse",
		KeyConfirmDelete:    "Delete Shortcut",
		KeyConfirmDeleteMsg: "Are you sure you want to delete this shortcut?",
		KeySaveFailed:       "Failed to save shortcut",
		KeyLaunchFailed:     "Failed to launch shortcut",
		KeyValidationName:   "Name is required",
		KeyValidationField:  "This field is required",
		KeyAutostart:        "Launch at login",
		KeyAutostartFailed:  "Failed to change autostart",
		KeyExport:           "Export…",
		KeyImport:           "Import…",
		KeyExported:         "Shortcuts exported",
		KeyImported:         "Shortcuts imported",
		KeyExportFailed:     "Export failed",
		KeyImportFailed:     "Import failed",
		KeyBackup:           "Backup",
		KeyPreferences:      "Preferences",
		KeyLanguage:         "Language",
		KeyConfigFile:       "Config File",
		KeyPopupSize:        "Launcher Size",
		KeyHideAfterLaunch:  "Hide launcher after launching",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Some changes take effect after restart.",
		KeyError:            "Error",

		KeyExecutablePath: "Executable Path",
		KeyURL:            "URL",
		KeyFilePath:       "File Path",
		KeyFolderPath:     "Folder Path",
		KeyScriptFilePath: "Script File Path",
		KeyScript:         "Script",

		typeKeyPrefix + "app":    "Application",
		typeKeyPrefix + "url":    "URL",
		typeKeyPrefix + "file":   "File",
		typeKeyPrefix + "folder": "Folder",
		typeKeyPrefix + "script": "Script",
		typeKeyPrefix + "shell":  "Shell",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Ярлыки",
		KeySettingsTitle:    "Настройки ярлыков",
		KeyOpenLauncher:     "Открыть панель",
		KeySettings:         "Настройки",
		KeyQuit:             "Выход",
		KeyTabShortcuts:     "Ярлыки",
		KeyTabGeneral:       "Общие",
		KeyAddShortcut:      "Добавить ярлык",
		KeyEditShortcut:     "Изменить ярлык",
		KeyNoShortcuts:      "Ярлыков пока нет",
		KeyNoShortcutsHint:  "Откройте настройки через значок в трее, чтобы добавить ярлыки.",
		KeyEmptyListHint:    "Нажмите «Добавить ярлык», чтобы создать первый.",
		KeyLoadFailed:       "Не удалось загрузить ярлыки. Проверьте формат файла конфигурации.",
		KeyName:             "Название",
		KeyType:             "Тип",
		KeyShell:            "Оболочка",
		KeyArgs:             "Аргументы",
		KeyWorkingDir:       "Рабочая папка",
		KeyDescription:      "Описание",
		KeyHidden:           "Запускать скрыто",
		KeyAdmin:            "От имени администратора",
		KeyAdminBadge:       "Админ",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyDelete:           "Удалить",
		KeyEdit:             "Изменить",
		KeyBrowse:           "Обзор",
		KeyConfirmDelete:    "Удаление ярлыка",
		KeyConfirmDeleteMsg: "Вы уверены, что хотите удалить этот ярлык?",
		KeySaveFailed:       "Не удалось сохранить ярлык",
		KeyLaunchFailed:     "Не удалось запустить ярлык",
		KeyValidationName:   "Укажите название",
		KeyValidationField:  "Обязательное поле",
		KeyAutostart:        "Запускать при входе в систему",
		KeyAutostartFailed:  "Не удалось изменить автозапуск",
		KeyExport:           "Экспорт…",
		KeyImport:           "Импорт…",
		KeyExported:         "Ярлыки экспортированы",
		KeyImported:         "Ярлыки импортированы",
		KeyExportFailed:     "Ошибка экспорта",
		KeyImportFailed:     "Ошибка импорта",
		KeyBackup:           "Резервная копия",
		KeyPreferences:      "Параметры",
		KeyLanguage:         "Язык",
		KeyConfigFile:       "Файл конфигурации",
		KeyPopupSize:        "Размер панели",
		KeyHideAfterLaunch:  "Скрывать панель после запуска",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Некоторые изменения вступят в силу после перезапуска.",
		KeyError:            "Ошибка",

		KeyExecutablePath: "Путь к программе",
		KeyURL:            "URL",
		KeyFilePath:       "Путь к файлу",
		KeyFolderPath:     "Путь к папке",
		KeyScriptFilePath: "Путь к скрипту",
		KeyScript:         "Скрипт",

		typeKeyPrefix + "app":    "Приложение",
		typeKeyPrefix + "url":    "Ссылка",
		typeKeyPrefix + "file":   "Файл",
		typeKeyPrefix + "folder": "Папка",
		typeKeyPrefix + "script": "Скрипт",
		typeKeyPrefix + "shell":  "Команды",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Atalhos",
		KeySettingsTitle:    "Configurações de Atalhos",
		KeyOpenLauncher:     "Abrir Lançador",
		KeySettings:         "Configurações",
		KeyQuit:             "Sair",
		KeyTabShortcuts:     "Atalhos",
		KeyTabGeneral:       "Geral",
		KeyAddShortcut:      "Adicionar Atalho",
		KeyEditShortcut:     "Editar Atalho",
		KeyNoShortcuts:      "Nenhum atalho ainda",
		KeyNoShortcutsHint:  "Abra as Configurações pelo ícone da bandeja para adicionar atalhos.",
		KeyEmptyListHint:    "Clique em \"Adicionar Atalho\" para criar o primeiro.",
		KeyLoadFailed:       "Falha ao carregar atalhos. Verifique o formato do arquivo de configuração.",
		KeyName:             "Nome",
		KeyType:             "Tipo",
		KeyShell:            "Shell",
		KeyArgs:             "Argumentos",
		KeyWorkingDir:       "Diretório de Trabalho",
		KeyDescription:      "Descrição",
		KeyHidden:           "Executar oculto",
		KeyAdmin:            "Executar como administrador",
		KeyAdminBadge:       "Admin",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyDelete:           "Excluir",
		KeyEdit:             "Editar",
		KeyBrowse:           "Navegar",
		KeyConfirmDelete:    "Excluir Atalho",
		KeyConfirmDeleteMsg: "Tem certeza de que deseja excluir este atalho?",
		KeySaveFailed:       "Falha ao salvar atalho",
		KeyLaunchFailed:     "Falha ao iniciar atalho",
		KeyValidationName:   "O nome é obrigatório",
		KeyValidationField:  "Este campo é obrigatório",
		KeyAutostart:        "Iniciar com o sistema",
		KeyAutostartFailed:  "Falha ao alterar a inicialização automática",
		KeyExport:           "Exportar…",
		KeyImport:           "Importar…",
		KeyExported:         "Atalhos exportados",
		KeyImported:         "Atalhos importados",
		KeyExportFailed:     "Falha na exportação",
		KeyImportFailed:     "Falha na importação",
		KeyBackup:           "Backup",
		KeyPreferences:      "Preferências",
		KeyLanguage:         "Idioma",
		KeyConfigFile:       "Arquivo de Configuração",
		KeyPopupSize:        "Tamanho do Lançador",
		KeyHideAfterLaunch:  "Ocultar lançador após iniciar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "Algumas alterações terão efeito após reiniciar.",
		KeyError:            "Erro",

		KeyExecutablePath: "Caminho do Executável",
		KeyURL:            "URL",
		KeyFilePath:       "Caminho do Arquivo",
		KeyFolderPath:     "Caminho da Pasta",
		KeyScriptFilePath: "Caminho do Script",
		KeyScript:         "Script",

		typeKeyPrefix + "app":    "Aplicativo",
		typeKeyPrefix + "url":    "URL",
		typeKeyPrefix + "file":   "Arquivo",
		typeKeyPrefix + "folder": "Pasta",
		typeKeyPrefix + "script": "Script",
		typeKeyPrefix + "shell":  "Shell",
	}
}
