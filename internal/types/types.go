package types

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading
)

// StatusMsg is shown in the status bar until it expires
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status bar if MessageID is still current
type ClearStatusMsg struct {
	MessageID int
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}

// SearchSubmitMsg is sent when the user submits the search input
type SearchSubmitMsg struct {
	Query string
	Regex bool
}
