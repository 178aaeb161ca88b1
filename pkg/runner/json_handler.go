package runner

import (
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/cascade/pkg/domain"
)

// JSONSink writes every snapshot as one JSON line.
type JSONSink struct {
	Encoder *json.Encoder
}

// NewJSONSink creates a JSON-Lines sink on w. A nil writer selects Stdout.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	return &JSONSink{Encoder: json.NewEncoder(w)}
}

// Draw implements Sink.
func (s *JSONSink) Draw(snapshot domain.Snapshot) error {
	return s.Encoder.Encode(snapshot)
}

// Notify implements Notifier by emitting a {"notice": ...} line.
func (s *JSONSink) Notify(message string) {
	_ = s.Encoder.Encode(map[string]string{"notice": message})
}
