package esignapimodels

type TabPlacement string

const (
	PlacementAnchor   TabPlacement = "anchor"   // поиск текста-якоря в документе
	PlacementPosition TabPlacement = "position" // фиксированные координаты на странице
)

const AnchorUnitsPixels = "pixels"

type Tabs struct {
	SignHereTabs []SignHere `json:"signHereTabs,omitempty"`
}

// SignHere место подписи. Заполняется либо якорь, либо координаты.
type SignHere struct {
	AnchorString  string `json:"anchorString,omitempty"`
	AnchorUnits   string `json:"anchorUnits,omitempty"`
	AnchorXOffset string `json:"anchorXOffset,omitempty"`
	AnchorYOffset string `json:"anchorYOffset,omitempty"`

	DocumentID string `json:"documentId,omitempty"`
	PageNumber string `json:"pageNumber,omitempty"`
	XPosition  string `json:"xPosition,omitempty"`
	YPosition  string `json:"yPosition,omitempty"`
}

func (s SignHere) Placement() TabPlacement {
	if s.AnchorString != "" {
		return PlacementAnchor
	}
	return PlacementPosition
}
