package advisory

// AnalysisFailedError signals that an outfit analysis did not produce a
// usable critique, either a transport failure or an unparseable response.
// The uploaded photo stays retained so the user can retry without
// re-uploading.
type AnalysisFailedError struct {
	Err error
}

func (e AnalysisFailedError) Error() string {
	return "diagnosis failed, please try again"
}

func (e AnalysisFailedError) Unwrap() error {
	return e.Err
}

// TurnFailedError marks a chat turn that could not reach the backend.
// Callers of SendTurn never see it, they get the fallback reply instead.
// The type exists for logging.
type TurnFailedError struct {
	Err error
}

func (e TurnFailedError) Error() string {
	return "chat turn failed"
}

func (e TurnFailedError) Unwrap() error {
	return e.Err
}
