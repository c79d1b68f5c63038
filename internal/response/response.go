package response

// StaticBody is sent to every client, whether or not its request parsed.
const StaticBody = "Hello from Go!"

// WriteStatic writes the fixed reply: a 200 status line, an empty
// header block and StaticBody.
func (w *Writer) WriteStatic() error {
	if err := w.WriteStatusLine(StatusOK); err != nil {
		return err
	}
	if err := w.WriteHeaders(); err != nil {
		return err
	}
	return w.WriteBody([]byte(StaticBody))
}
