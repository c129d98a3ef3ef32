package identify

// Response formats recognized by the identification service
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

// SongDetails holds the values derived from the fingerprinting tool for a
// single file. Details are transient: they are recomputed on demand and
// never cached by the identifier, so callers needing reuse should hold on
// to the returned value themselves.
type SongDetails struct {
	DurationSeconds int    `json:"duration"`
	Fingerprint     string `json:"fingerprint"`
}
