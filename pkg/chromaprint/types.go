package chromaprint

// Fingerprint is the result of running fpcalc against an audio file
type Fingerprint struct {
	Duration    float64 `json:"duration"`    // Duration in seconds as reported by fpcalc
	Fingerprint string  `json:"fingerprint"` // Compressed chromaprint, an opaque base64-like token
}
