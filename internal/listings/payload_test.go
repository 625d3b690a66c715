package listings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buenrollo/spots-admin/internal/attachment"
	"github.com/buenrollo/spots-admin/internal/domain"
)

func buildFields(t *testing.T, draft domain.SpotDraft, logo attachment.LogoRef) map[string]string {
	t.Helper()

	payload, err := BuildSpotPayload(draft, logo)
	require.NoError(t, err)
	require.Contains(t, payload.ContentType, "multipart/form-data")

	fields, err := payload.Fields()
	require.NoError(t, err)

	return fields
}

func TestBuildSpotPayload_RequiredFieldsOnly(t *testing.T) {
	// Create flow with no optional fields and no file: the payload holds
	// exactly the name and the section id.
	draft := domain.SpotDraft{
		SectionID: 3,
		Name:      "Café Sur",
	}

	fields := buildFields(t, draft, attachment.LogoRef{Kind: attachment.RefNone})

	assert.Equal(t, map[string]string{
		"nombre":     "Café Sur",
		"seccion_id": "3",
	}, fields)
}

func TestBuildSpotPayload_OptionalFieldPresence(t *testing.T) {
	draft := domain.SpotDraft{
		SectionID:    3,
		Name:         "Café Sur",
		Address:      "Av. Siempre Viva 742",
		Phone:        "5551234",
		Website:      "https://cafesur.example.com",
		DisplayOrder: 2,
	}

	fields := buildFields(t, draft, attachment.LogoRef{Kind: attachment.RefNone})

	assert.Equal(t, "Av. Siempre Viva 742", fields["direccion"])
	assert.Equal(t, "5551234", fields["telefono"])
	assert.Equal(t, "https://cafesur.example.com", fields["web"])
	assert.Equal(t, "2", fields["lugares_order"])

	// Empty optional fields never appear, not even as empty strings.
	for _, absent := range []string{"link_direccion", "descripcion", "instagram", "reservas", "menu", "delivery", "logo", "logo_url"} {
		assert.NotContains(t, fields, absent)
	}
}

func TestBuildSpotPayload_ZeroDisplayOrderIsOmitted(t *testing.T) {
	// A display order of exactly 0 passes validation but is dropped from
	// the payload; the server's default applies instead. Asserted here as
	// the current contract, quirky as it is.
	draft := domain.SpotDraft{
		SectionID:    3,
		Name:         "Café Sur",
		DisplayOrder: 0,
	}

	fields := buildFields(t, draft, attachment.LogoRef{Kind: attachment.RefNone})

	assert.NotContains(t, fields, "lugares_order")
}

func TestBuildSpotPayload_RetainedLogoURL(t *testing.T) {
	// Edit flow with an existing image and no new file: the original
	// reference is resent unchanged.
	draft := domain.SpotDraft{
		ID:           42,
		SectionID:    3,
		Name:         "Café Sur",
		Phone:        "5551234",
		DisplayOrder: 1,
	}

	fields := buildFields(t, draft, attachment.LogoRef{
		Kind: attachment.RefRetain,
		URL:  "https://x/img.png",
	})

	assert.Equal(t, "https://x/img.png", fields["logo_url"])
	assert.Equal(t, "5551234", fields["telefono"])
	assert.NotContains(t, fields, "logo")
}

func TestBuildSpotPayload_UploadedLogo(t *testing.T) {
	resolver := attachment.NewResolver()
	defer func() { _ = resolver.Close() }()

	require.NoError(t, resolver.Stage("logo.png", 9, strings.NewReader("png-bytes")))

	draft := domain.SpotDraft{
		SectionID:    3,
		Name:         "Café Sur",
		DisplayOrder: 1,
	}

	fields := buildFields(t, draft, resolver.Resolve(""))

	assert.Equal(t, "logo.png", fields["logo"])
	assert.NotContains(t, fields, "logo_url")
}
