package http

// WriteErrorForTest expone writeError a los tests externos.
var WriteErrorForTest = writeError
