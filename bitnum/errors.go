package bitnum

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bitnum")

// InvalidInput is the class of errors returned when text is not a decimal
// number.
var InvalidInput = errs.Class("invalid input")
