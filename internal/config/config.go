package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "kanji-tui"

// Переменные окружения, перекрывающие файл конфигурации
const (
	EnvConfigPath = "KANJI_TUI_CONFIG"
	EnvDataDir    = "KANJI_TUI_DATA_DIR"
	EnvLogLevel   = "KANJI_TUI_LOG_LEVEL"
)

// Config конфигурация приложения
type Config struct {
	// Внешний вид
	Theme string `yaml:"theme"` // "dark" или "light"

	// Данные плагинов
	DataDir   string `yaml:"data_dir"`   // Корень директорий данных плагинов
	WatchData bool   `yaml:"watch_data"` // Перечитывать данные при внешнем изменении

	// Поведение
	ConfirmQuit bool `yaml:"confirm_quit"`

	// Боковая панель
	Sidebar SidebarConfig `yaml:"sidebar"`

	// Горячие клавиши: действие или id команды -> клавиша
	Keybindings map[string]string `yaml:"keybindings"`

	// Логирование
	Logging LoggingConfig `yaml:"logging"`

	path string
}

// SidebarConfig настройки правой панели
type SidebarConfig struct {
	Width int `yaml:"width"`
}

// LoggingConfig настройки логирования
type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error
	FilePath string `yaml:"file_path"` // Путь к файлу логов
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		Theme:       "dark",
		DataDir:     "", // Будет определен автоматически
		WatchData:   true,
		ConfirmQuit: false,

		Sidebar: SidebarConfig{
			Width: 34,
		},

		Keybindings: map[string]string{
			"quit":               "ctrl+q",
			"command_palette":    "ctrl+p",
			"help":               "f1",
			"settings":           "f2",
			"close_panel":        "ctrl+w",
			"focus_home":         "esc",
			"open-kanji-tab":     "ctrl+o",
			"load-another-kanji": "ctrl+n",
		},

		Logging: LoggingConfig{
			Level:    "info",
			FilePath: "", // Будет определен автоматически
		},
	}
}

// Load загружает конфигурацию из файла, создавая его при первом запуске.
// При ошибке возвращается конфигурация по умолчанию вместе с ошибкой.
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := DefaultConfig()
	defer cfg.finalize()

	configPath, err := getConfigPath()
	if err != nil {
		return cfg, err
	}
	cfg.path = configPath

	// Если файл не существует, создаем его с настройками по умолчанию
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, cfg.Save(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	parsed := DefaultConfig()
	if err := yaml.Unmarshal(data, parsed); err != nil {
		return cfg, err
	}
	parsed.path = configPath
	*cfg = *parsed

	// Заполняем отсутствующие привязки клавиш значениями по умолчанию;
	// явная пустая строка означает, что действие не привязано
	cfg.applyKeybindingDefaults(DefaultConfig().Keybindings)

	return cfg, nil
}

// finalize применяет переменные окружения, пути по умолчанию и валидацию
func (c *Config) finalize() {
	c.applyEnv()
	c.fillPaths()
	_ = c.Validate()
}

// Path возвращает путь, из которого загружена конфигурация
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyKeybindingDefaults(defaults map[string]string) {
	if defaults == nil {
		return
	}
	if c.Keybindings == nil {
		c.Keybindings = make(map[string]string, len(defaults))
	}
	for key, value := range defaults {
		if _, ok := c.Keybindings[key]; !ok {
			c.Keybindings[key] = value
		}
	}
}

func (c *Config) applyEnv() {
	if dir := strings.TrimSpace(os.Getenv(EnvDataDir)); dir != "" {
		c.DataDir = dir
	}
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// fillPaths устанавливает пути по умолчанию, если они не заданы
func (c *Config) fillPaths() {
	if c.DataDir == "" {
		c.DataDir = getDefaultDataDir()
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = getDefaultLogPath()
	}
}

// Save сохраняет конфигурацию в файл
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Keybinding возвращает клавишу для действия или пустую строку, если
// действие не привязано
func (c *Config) Keybinding(action string) string {
	return strings.TrimSpace(c.Keybindings[action])
}

// getConfigPath возвращает путь к конфигурационному файлу
func getConfigPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(EnvConfigPath)); path != "" {
		return path, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, appName, "config.yaml"), nil
}

// getDefaultDataDir возвращает директорию данных по умолчанию
func getDefaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, appName)
}

// getDefaultLogPath возвращает путь к файлу логов по умолчанию
func getDefaultLogPath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, _ := os.UserHomeDir()
		cacheDir = filepath.Join(homeDir, ".cache")
	}

	return filepath.Join(cacheDir, appName, "app.log")
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Theme != "dark" && c.Theme != "light" {
		c.Theme = "dark"
	}

	if c.Sidebar.Width < 16 || c.Sidebar.Width > 80 {
		c.Sidebar.Width = 34
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		c.Logging.Level = "info"
	}

	return nil
}
