package domain

import "time"

// Spot is a business-listing record belonging to a section. The remote
// listings API owns these records; this service only curates them.
type Spot struct {
	ID           uint      `json:"id"`
	SectionID    uint      `json:"seccion_id"`
	Name         string    `json:"nombre"`
	Address      string    `json:"direccion,omitempty"`
	AddressLink  string    `json:"link_direccion,omitempty"`
	Phone        string    `json:"telefono,omitempty"`
	Description  string    `json:"descripcion,omitempty"`
	Instagram    string    `json:"instagram,omitempty"`
	Reservations string    `json:"reservas,omitempty"`
	Menu         string    `json:"menu,omitempty"`
	Delivery     string    `json:"delivery,omitempty"`
	Website      string    `json:"web,omitempty"`
	DisplayOrder uint      `json:"lugares_order"`
	LogoURL      string    `json:"logo_url,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// SpotDraft is the in-memory record under edit: the validated form values
// plus the section the spot belongs to. ID is zero for the create flow.
// LogoURL carries the retained asset reference in the edit flow; the pending
// upload travels separately through the attachment resolver.
type SpotDraft struct {
	ID           uint
	SectionID    uint
	Name         string
	Address      string
	AddressLink  string
	Phone        string
	Description  string
	Instagram    string
	Reservations string
	Menu         string
	Delivery     string
	Website      string
	DisplayOrder uint
	LogoURL      string
}
