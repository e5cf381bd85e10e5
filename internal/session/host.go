package session

// StringHost is a Host backed by a plain string. It suits batch checking
// and tests where there is no real widget.
type StringHost struct {
	text     string
	Replaced int
}

func NewStringHost(text string) *StringHost {
	return &StringHost{text: text}
}

func (h *StringHost) Text() string { return h.text }

// SetText simulates the user editing the widget.
func (h *StringHost) SetText(text string) { h.text = text }

func (h *StringHost) ReplaceText(text string) {
	h.text = text
	h.Replaced++
}
