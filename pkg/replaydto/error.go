package replaydto

// DomainError is a collaborator-facing failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "replay engine error"
}

// ErrMoveInputUnsupported is returned for any attempt to play a move by
// hand: the engine replays recorded games and does not accept new moves.
var ErrMoveInputUnsupported = DomainError{
	Code:    "move_input_unsupported",
	Message: "interactive move input is not supported",
}
