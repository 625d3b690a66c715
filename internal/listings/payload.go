package listings

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"strconv"

	"github.com/buenrollo/spots-admin/internal/attachment"
	"github.com/buenrollo/spots-admin/internal/domain"
)

// Payload is a transport-ready multipart body for the listings API.
type Payload struct {
	Body        []byte
	ContentType string
}

// Fields returns the multipart field names present in the payload.
// The file part, if any, is reported under its field name as well.
func (p *Payload) Fields() (map[string]string, error) {
	reader, err := p.reader()
	if err != nil {
		return nil, err
	}

	form, err := reader.ReadForm(attachment.MaxLogoBytes * 2)
	if err != nil {
		return nil, fmt.Errorf("reader.ReadForm -> %w", err)
	}
	defer func() { _ = form.RemoveAll() }()

	fields := make(map[string]string, len(form.Value)+len(form.File))
	for name, values := range form.Value {
		if len(values) > 0 {
			fields[name] = values[0]
		}
	}
	for name, headers := range form.File {
		if len(headers) > 0 {
			fields[name] = headers[0].Filename
		}
	}

	return fields, nil
}

func (p *Payload) reader() (*multipart.Reader, error) {
	_, params, err := mime.ParseMediaType(p.ContentType)
	if err != nil {
		return nil, fmt.Errorf("mime.ParseMediaType -> %w", err)
	}

	return multipart.NewReader(bytes.NewReader(p.Body), params["boundary"]), nil
}

// BuildSpotPayload assembles the outgoing multipart body from a validated
// draft and a resolved logo reference. Name and section id are always
// written; optional scalar fields are written only when non-empty.
func BuildSpotPayload(draft domain.SpotDraft, logo attachment.LogoRef) (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("nombre", draft.Name); err != nil {
		return nil, fmt.Errorf("w.WriteField -> %w", err)
	}
	if err := w.WriteField("seccion_id", strconv.FormatUint(uint64(draft.SectionID), 10)); err != nil {
		return nil, fmt.Errorf("w.WriteField -> %w", err)
	}

	optional := []struct {
		name  string
		value string
	}{
		{"direccion", draft.Address},
		{"link_direccion", draft.AddressLink},
		{"telefono", draft.Phone},
		{"descripcion", draft.Description},
		{"instagram", draft.Instagram},
		{"reservas", draft.Reservations},
		{"menu", draft.Menu},
		{"delivery", draft.Delivery},
		{"web", draft.Website},
	}
	for _, field := range optional {
		if field.value == "" {
			continue
		}
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, fmt.Errorf("w.WriteField -> %w", err)
		}
	}

	// A display order of exactly zero reads as unset and is dropped from
	// the payload. The server fills its default for absent orders, so
	// zero-order spots rely on that default rather than an explicit 0.
	if draft.DisplayOrder != 0 {
		if err := w.WriteField("lugares_order", strconv.FormatUint(uint64(draft.DisplayOrder), 10)); err != nil {
			return nil, fmt.Errorf("w.WriteField -> %w", err)
		}
	}

	switch logo.Kind {
	case attachment.RefUpload:
		part, err := w.CreateFormFile("logo", logo.File.Name)
		if err != nil {
			return nil, fmt.Errorf("w.CreateFormFile -> %w", err)
		}
		src, err := logo.File.Open()
		if err != nil {
			return nil, fmt.Errorf("logo.File.Open -> %w", err)
		}
		_, err = io.Copy(part, src)
		if closeErr := src.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return nil, fmt.Errorf("io.Copy -> %w", err)
		}
	case attachment.RefRetain:
		if err := w.WriteField("logo_url", logo.URL); err != nil {
			return nil, fmt.Errorf("w.WriteField -> %w", err)
		}
	case attachment.RefNone:
		// No image field at all.
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("w.Close -> %w", err)
	}

	return &Payload{
		Body:        buf.Bytes(),
		ContentType: w.FormDataContentType(),
	}, nil
}
