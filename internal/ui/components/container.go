package components

// Element текстовый блок внутри панели
type Element struct {
	Class    string
	Text     string
	Color    string // пустая строка - цвет темы
	FontSize int    // относительный размер, 0 - обычный текст
}

// Container содержимое панели: упорядоченный список блоков
type Container struct {
	class    string
	elements []*Element
	removed  bool
}

// NewContainer создает пустой контейнер с CSS-подобным классом
func NewContainer(class string) *Container {
	return &Container{class: class}
}

// Class возвращает класс контейнера
func (c *Container) Class() string {
	return c.class
}

// Empty удаляет все блоки
func (c *Container) Empty() {
	c.elements = nil
}

// CreateDiv добавляет блок в конец и возвращает его для настройки стиля
func (c *Container) CreateDiv(class string) *Element {
	el := &Element{Class: class}
	c.elements = append(c.elements, el)
	return el
}

// Elements возвращает копию блоков в порядке отрисовки
func (c *Container) Elements() []Element {
	out := make([]Element, 0, len(c.elements))
	for _, el := range c.elements {
		out = append(out, *el)
	}
	return out
}

// Remove освобождает содержимое; после этого контейнер не отрисовывается
func (c *Container) Remove() {
	c.elements = nil
	c.removed = true
}

// Removed сообщает, был ли контейнер удален
func (c *Container) Removed() bool {
	return c.removed
}
