package shared

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	MRU Currency = "MRU"
)

// Reference is the unit every ledger-level amount is expressed in.
const Reference = USD

// Supported lists the currencies an account can be opened in.
var Supported = []Currency{USD, EUR, MRU}
