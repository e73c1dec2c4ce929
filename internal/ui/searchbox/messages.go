package searchbox

// QueryChangedMsg is sent to the host after every change of the query text
type QueryChangedMsg struct {
	Query string
}

// ResultSelectedMsg is sent to the host when the user commits a result
type ResultSelectedMsg[T any] struct {
	Item T
}

// VisibilityChangedMsg is sent when the results popup opens or closes
type VisibilityChangedMsg struct {
	Visible bool
	Count   int
}
