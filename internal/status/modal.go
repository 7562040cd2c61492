package status

// ButtonStyle selects how a modal button is rendered.
type ButtonStyle int

const (
	ButtonDefault ButtonStyle = iota
	ButtonPrimary
	ButtonDanger
)

// Button is one modal action. A nil OnClick simply dismisses the dialog.
type Button struct {
	Label   string
	Style   ButtonStyle
	OnClick func()
}

// Modal describes one dialog. Buttons are rendered in order; dismissing
// the dialog without choosing a button is always possible. Traceback
// lines, when present, are shown in a read-only viewer below the body.
type Modal struct {
	Title     string
	Body      string
	Traceback []string
	Buttons   []Button
	OnOpen    func()
}

// ModalPresenter shows dialogs on behalf of the router.
type ModalPresenter interface {
	Show(m Modal)
}
