package components

// Form is the element tree a settings tab draws into. It is rebuilt from
// scratch on every Display, so handlers bound to an old build are dropped
// together with it.
type Form struct {
	items   []Item
	version int
}

// Item is a top-level form element: *Heading, *Setting, *Table or *Button.
type Item interface {
	isFormItem()
}

// Heading is a section title.
type Heading struct {
	Text string
}

// Setting is a named single-input row.
type Setting struct {
	Name  string
	Desc  string
	Input *Input
}

// Table lays inputs and buttons out in rows under a header.
type Table struct {
	Headers []string
	Rows    []*Row
}

// Row is a table row: inputs first, then buttons.
type Row struct {
	Inputs  []*Input
	Buttons []*Button
}

// Input is an editable text field. Color inputs also accept picker values.
type Input struct {
	Value       string
	Placeholder string
	Color       bool
	OnChange    func(value string) error
}

// Button is a clickable control.
type Button struct {
	Text    string
	OnClick func() error
}

func (*Heading) isFormItem() {}
func (*Setting) isFormItem() {}
func (*Table) isFormItem()   {}
func (*Button) isFormItem()  {}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Empty drops every item. Each call starts a new build generation.
func (f *Form) Empty() {
	f.items = nil
	f.version++
}

// Version identifies the current build generation.
func (f *Form) Version() int {
	return f.version
}

// Items returns the top-level items in display order.
func (f *Form) Items() []Item {
	return f.items
}

// AddHeading appends a heading.
func (f *Form) AddHeading(text string) *Heading {
	h := &Heading{Text: text}
	f.items = append(f.items, h)
	return h
}

// AddSetting appends a named setting with a single text input.
func (f *Form) AddSetting(name, desc string) *Setting {
	s := &Setting{Name: name, Desc: desc, Input: &Input{}}
	f.items = append(f.items, s)
	return s
}

// AddTable appends a table with the given column headers.
func (f *Form) AddTable(headers ...string) *Table {
	t := &Table{Headers: headers}
	f.items = append(f.items, t)
	return t
}

// AddButton appends a standalone button.
func (f *Form) AddButton(text string, onClick func() error) *Button {
	b := &Button{Text: text, OnClick: onClick}
	f.items = append(f.items, b)
	return b
}

// AddRow appends an empty row.
func (t *Table) AddRow() *Row {
	r := &Row{}
	t.Rows = append(t.Rows, r)
	return r
}

// AddInput appends a text input to the row.
func (r *Row) AddInput(value string, onChange func(string) error) *Input {
	in := &Input{Value: value, OnChange: onChange}
	r.Inputs = append(r.Inputs, in)
	return in
}

// AddButton appends a button to the row.
func (r *Row) AddButton(text string, onClick func() error) *Button {
	b := &Button{Text: text, OnClick: onClick}
	r.Buttons = append(r.Buttons, b)
	return b
}

// Change stores the new value and fires OnChange.
func (in *Input) Change(value string) error {
	in.Value = value
	if in.OnChange == nil {
		return nil
	}
	return in.OnChange(value)
}

// Click fires OnClick.
func (b *Button) Click() error {
	if b.OnClick == nil {
		return nil
	}
	return b.OnClick()
}

// Control is one focusable element of a form; exactly one field is set.
type Control struct {
	Input  *Input
	Button *Button
}

// Controls flattens the form into focus order.
func (f *Form) Controls() []Control {
	var out []Control
	for _, item := range f.items {
		switch it := item.(type) {
		case *Setting:
			if it.Input != nil {
				out = append(out, Control{Input: it.Input})
			}
		case *Table:
			for _, row := range it.Rows {
				for _, in := range row.Inputs {
					out = append(out, Control{Input: in})
				}
				for _, b := range row.Buttons {
					out = append(out, Control{Button: b})
				}
			}
		case *Button:
			out = append(out, Control{Button: it})
		}
	}
	return out
}
