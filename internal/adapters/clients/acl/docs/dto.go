// Package docs holds the Docs v1 batchUpdate wire types and the translation
// from domain content-mutation requests.
package docs

// BatchUpdateRequestDTO is the body of documents.batchUpdate.
type BatchUpdateRequestDTO struct {
	Requests []RequestDTO `json:"requests"`
}

// BatchUpdateResponseDTO is the documents.batchUpdate response. Replies are
// not inspected.
type BatchUpdateResponseDTO struct {
	DocumentID string           `json:"documentId"`
	Replies    []map[string]any `json:"replies,omitempty"`
}

// RequestDTO is a union; exactly one field is set.
type RequestDTO struct {
	InsertText             *InsertTextDTO             `json:"insertText,omitempty"`
	UpdateParagraphStyle   *UpdateParagraphStyleDTO   `json:"updateParagraphStyle,omitempty"`
	UpdateTextStyle        *UpdateTextStyleDTO        `json:"updateTextStyle,omitempty"`
	CreateParagraphBullets *CreateParagraphBulletsDTO `json:"createParagraphBullets,omitempty"`
}

type LocationDTO struct {
	Index int `json:"index"`
}

type RangeDTO struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

type InsertTextDTO struct {
	Text     string      `json:"text"`
	Location LocationDTO `json:"location"`
}

type ParagraphStyleDTO struct {
	NamedStyleType string `json:"namedStyleType"`
}

type UpdateParagraphStyleDTO struct {
	Range          RangeDTO          `json:"range"`
	ParagraphStyle ParagraphStyleDTO `json:"paragraphStyle"`
	Fields         string            `json:"fields"`
}

type WeightedFontFamilyDTO struct {
	FontFamily string `json:"fontFamily"`
}

type LinkDTO struct {
	URL string `json:"url"`
}

// TextStyleDTO carries only the properties named in the accompanying field
// mask. Properties outside the mask are ignored by the API.
type TextStyleDTO struct {
	Bold               bool                   `json:"bold,omitempty"`
	Italic             bool                   `json:"italic,omitempty"`
	Strikethrough      bool                   `json:"strikethrough,omitempty"`
	WeightedFontFamily *WeightedFontFamilyDTO `json:"weightedFontFamily,omitempty"`
	Link               *LinkDTO               `json:"link,omitempty"`
}

type UpdateTextStyleDTO struct {
	Range     RangeDTO     `json:"range"`
	TextStyle TextStyleDTO `json:"textStyle"`
	Fields    string       `json:"fields"`
}

type CreateParagraphBulletsDTO struct {
	Range        RangeDTO `json:"range"`
	BulletPreset string   `json:"bulletPreset"`
}
