package views

// ViewState holds the state every view model shares. Embed it to get
// window dimensions and status message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a status message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current status message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}
