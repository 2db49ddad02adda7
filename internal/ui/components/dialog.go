package components

import (
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"kanji-tui/internal/platform"
	"kanji-tui/internal/ui/styles"
)

// ConfirmDialog модальный вопрос да/нет поверх основной области.
// Ответ приходит через канал, который возвращает Ask.
type ConfirmDialog struct {
	theme   *styles.Theme
	title   string
	yesKeys []string
	noKeys  []string

	mu     sync.Mutex
	body   string
	open   bool
	answer chan bool
}

// NewConfirmDialog создает диалог. Да: y/enter, нет: n/esc.
func NewConfirmDialog(theme *styles.Theme, title string) *ConfirmDialog {
	return &ConfirmDialog{
		theme:   theme,
		title:   title,
		yesKeys: []string{"y", "enter"},
		noKeys:  []string{"n", "esc"},
	}
}

// Ask открывает диалог с текстом body. Пока диалог открыт, повторный
// вызов возвращает тот же канал и текст не меняет.
func (d *ConfirmDialog) Ask(body string) <-chan bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return d.answer
	}
	d.body = body
	d.open = true
	d.answer = make(chan bool, 1)
	return d.answer
}

// IsVisible сообщает, открыт ли диалог.
func (d *ConfirmDialog) IsVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Dismiss закрывает диалог с ответом "нет".
func (d *ConfirmDialog) Dismiss() {
	d.close(false)
}

// Update отвечает на нажатие; остальные клавиши игнорируются, пока диалог открыт.
func (d *ConfirmDialog) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !d.IsVisible() {
		return nil
	}
	switch {
	case matchesAny(key.String(), d.yesKeys):
		d.close(true)
	case matchesAny(key.String(), d.noKeys):
		d.close(false)
	}
	return nil
}

// View отрисовывает диалог в стилях темы.
func (d *ConfirmDialog) View() string {
	d.mu.Lock()
	open, body := d.open, d.body
	d.mu.Unlock()

	if !open {
		return ""
	}

	var b strings.Builder
	b.WriteString(d.theme.TitleStyle.Render(d.title))
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(d.theme.TextStyle.Render(body))
	}
	b.WriteString("\n\n")
	b.WriteString(d.theme.DimStyle.Render(
		"Yes: " + keyList(d.yesKeys) + "  No: " + keyList(d.noKeys)))

	return d.theme.PanelFocusStyle.Padding(1, 2).Render(b.String())
}

func (d *ConfirmDialog) close(value bool) {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	ch := d.answer
	d.open = false
	d.answer = nil
	d.mu.Unlock()

	ch <- value
}

func matchesAny(key string, bindings []string) bool {
	for _, b := range bindings {
		if platform.MatchesKey(key, b) {
			return true
		}
	}
	return false
}

func keyList(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		shown[i] = platform.DisplayKey(k)
	}
	return strings.Join(shown, "/")
}
