package model

type RealizeRequestBody struct {
	Chords []ChordSpec `json:"chords"`
}

type RealizeResponse struct {
	Id       string    `json:"id"`
	Voicings []Voicing `json:"voicings"`
	Names    []string  `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
