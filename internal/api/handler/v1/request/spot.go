package request

import (
	"errors"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/buenrollo/spots-admin/internal/domain"
)

var (
	phonePattern        = regexp.MustCompile(`^[0-9]*$`)
	displayOrderPattern = regexp.MustCompile(`^[0-9]+$`)

	errPhoneNotNumeric     = errors.New("the phone must contain only numbers")
	errDisplayOrderInvalid = errors.New("the order must be an integer greater than or equal to 0")
)

// SpotForm is the editor's form for both the create and the edit flow.
// One constraint set serves both; the old console kept a second, slightly
// different schema around and the two disagreed on the caps.
//
// DisplayOrder is kept as the raw form string so non-numeric input fails
// validation with a field error instead of a binding error.
type SpotForm struct {
	Name         string `form:"nombre" json:"nombre"`
	Address      string `form:"direccion" json:"direccion"`
	AddressLink  string `form:"link_direccion" json:"link_direccion"`
	Phone        string `form:"telefono" json:"telefono"`
	Description  string `form:"descripcion" json:"descripcion"`
	Instagram    string `form:"instagram" json:"instagram"`
	Reservations string `form:"reservas" json:"reservas"`
	Menu         string `form:"menu" json:"menu"`
	Delivery     string `form:"delivery" json:"delivery"`
	Website      string `form:"web" json:"web"`
	DisplayOrder string `form:"lugares_order" json:"lugares_order"`

	// LogoURL is sent by the edit flow when the existing asset is kept.
	LogoURL string `form:"logo_url" json:"logo_url"`
}

func (f *SpotForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name,
			validation.Required.Error("the name is required"),
			validation.RuneLength(1, 30).Error("the name cannot exceed 30 characters")),
		validation.Field(&f.Address,
			validation.RuneLength(0, 25).Error("the address cannot exceed 25 characters")),
		validation.Field(&f.Phone,
			validation.Match(phonePattern).Error(errPhoneNotNumeric.Error()),
			validation.RuneLength(0, 25).Error("the phone cannot exceed 25 characters")),
		validation.Field(&f.Description,
			validation.RuneLength(0, 75).Error("the description cannot exceed 75 characters")),
		validation.Field(&f.DisplayOrder,
			validation.Required.Error("the order is required"),
			validation.Match(displayOrderPattern).Error(errDisplayOrderInvalid.Error())),
	)
}

// ToDraft converts a validated form into the record under edit. spotID is
// zero in the create flow.
func (f *SpotForm) ToDraft(sectionID, spotID uint) (domain.SpotDraft, error) {
	order, err := strconv.ParseUint(f.DisplayOrder, 10, 32)
	if err != nil {
		return domain.SpotDraft{}, errDisplayOrderInvalid
	}

	return domain.SpotDraft{
		ID:           spotID,
		SectionID:    sectionID,
		Name:         f.Name,
		Address:      f.Address,
		AddressLink:  f.AddressLink,
		Phone:        f.Phone,
		Description:  f.Description,
		Instagram:    f.Instagram,
		Reservations: f.Reservations,
		Menu:         f.Menu,
		Delivery:     f.Delivery,
		Website:      f.Website,
		DisplayOrder: uint(order),
		LogoURL:      f.LogoURL,
	}, nil
}
