package order

// Status is the closed order-lifecycle enumeration. The internal code is
// what gets persisted; the display label is what crosses the wire. The two
// are tied by an explicit table rather than derived from each other, so
// storage never depends on display text.
type Status string

const (
	StatusReceived      Status = "received"
	StatusInPreparation Status = "in_preparation"
	StatusReady         Status = "ready"
	StatusFinalized     Status = "finalized"
)

var statusLabels = map[Status]string{
	StatusReceived:      "Recebido",
	StatusInPreparation: "Em preparação",
	StatusReady:         "Pronto",
	StatusFinalized:     "Finalizado",
}

var statusByLabel = map[string]Status{
	"Recebido":      StatusReceived,
	"Em preparação": StatusInPreparation,
	"Pronto":        StatusReady,
	"Finalizado":    StatusFinalized,
}

// QueueStatuses are the statuses that count as pending production work.
// Finalized orders never appear in the kitchen queue.
var QueueStatuses = []Status{StatusReceived, StatusInPreparation, StatusReady}

// Label returns the display label for the status, e.g. "Em preparação".
func (s Status) Label() string {
	return statusLabels[s]
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseStatusLabel resolves a display label to its Status. Matching is
// exact: case- and accent-sensitive. Unknown labels yield a ValidationError.
func ParseStatusLabel(label string) (Status, error) {
	s, ok := statusByLabel[label]
	if !ok {
		return "", validationf("invalid status %q", label)
	}
	return s, nil
}
