package log

import "io"

// discard is above every level used in practice.
const discard Level = Error + 1000

// Discard is a logger that discards all its operations.
var Discard = New(io.Discard).WithLevel(discard)
