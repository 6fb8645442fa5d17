package output

import (
	"encoding/json"
	"io"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
)

// ScanDocument is the JSON shape of a scan: the report plus what produced it.
type ScanDocument struct {
	Scene    string          `json:"scene"`
	Disabled []analyzer.Code `json:"disabled,omitempty"`
	Report   analyzer.Report `json:"report"`
}

func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
