package judge

import "errors"

// errNoJSONObject indicates the reply contained no brace-delimited object.
var errNoJSONObject = errors.New("no JSON object in reply")
