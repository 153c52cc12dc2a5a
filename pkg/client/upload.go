package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

type UploadResult struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

type UploadClient struct {
	c *Client
}

// Upload sends r as the multipart "image" field. The returned URL is what goes into a
// document's image field.
func (u *UploadClient) Upload(ctx context.Context, filename, contentType string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out UploadResult
	if err := u.c.send(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *UploadClient) Delete(ctx context.Context, imageID string) error {
	return u.c.do(ctx, http.MethodDelete, "/upload/"+url.PathEscape(imageID), nil, nil)
}
