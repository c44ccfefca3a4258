package model

import "github.com/tidwall/gjson"

// SimplifiedContent is the display-ready structure decoded from a
// TermsOfService summary payload.
type SimplifiedContent struct {
	Sections          map[string]string
	Dangers           []string
	OverallAssessment string
}

// DecodeStatus discriminates the outcomes of decoding a summary payload.
type DecodeStatus int

const (
	// DecodeOK means the payload decoded into usable content.
	DecodeOK DecodeStatus = iota
	// DecodeAbsent means no payload was present.
	DecodeAbsent
	// DecodeMalformed means the payload was not valid JSON.
	DecodeMalformed
	// DecodeInvalid means the payload was valid JSON but not the object
	// shape the analysis pipeline emits.
	DecodeInvalid
)

// DecodeSimplified parses the serialized summary payload produced by the
// analysis pipeline. It never returns an error: any payload that cannot be
// decoded yields a nil content and a non-OK status, and the page falls back
// to a placeholder state.
func DecodeSimplified(raw *string) (*SimplifiedContent, DecodeStatus) {
	if raw == nil || *raw == "" {
		return nil, DecodeAbsent
	}
	if !gjson.Valid(*raw) {
		return nil, DecodeMalformed
	}

	root := gjson.Parse(*raw)
	if !root.IsObject() {
		return nil, DecodeInvalid
	}

	content := &SimplifiedContent{
		Sections:          make(map[string]string),
		OverallAssessment: root.Get("overall_assessment").String(),
	}
	root.Get("sections").ForEach(func(key, value gjson.Result) bool {
		content.Sections[key.String()] = value.String()
		return true
	})
	for _, danger := range root.Get("dangers").Array() {
		content.Dangers = append(content.Dangers, danger.String())
	}

	return content, DecodeOK
}
