package parse

import "errors"

// ErrStructural reports a document that violates the inventory
// grammar. No partial tree accompanies it.
var ErrStructural = errors.New("structural error")
