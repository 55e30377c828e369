package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// ProductAdminClient covers the admin-only product writes. Create and update
// are multipart submissions because they may carry an image file.
type ProductAdminClient struct{ c *Client }

func NewProductAdminClient(c *Client) *ProductAdminClient { return &ProductAdminClient{c: c} }

type ProductForm struct {
	Name        string
	Description string
	Price       string
	Category    string

	// Optional image upload.
	Image     io.Reader
	ImageName string
}

func (pc *ProductAdminClient) Add(ctx context.Context, form ProductForm) (Product, error) {
	return pc.submitMultipart(ctx, http.MethodPost, "/v1/products/addproduct", form.fields(), form)
}

// Update replaces the product identified by form.Name; the backend matches by
// current name, so renames go through a separate "newName" field upstream and
// are not supported here.
func (pc *ProductAdminClient) Update(ctx context.Context, form ProductForm) (Product, error) {
	return pc.submitMultipart(ctx, http.MethodPut, "/v1/products/update", form.fields(), form)
}

func (pc *ProductAdminClient) UpdateImage(ctx context.Context, name string, image io.Reader, imageName string) (Product, error) {
	form := ProductForm{Name: name, Image: image, ImageName: imageName}
	return pc.submitMultipart(ctx, http.MethodPatch, "/v1/products/update/image", map[string]string{"name": name}, form)
}

func (pc *ProductAdminClient) Delete(ctx context.Context, name string) error {
	q := url.Values{"name": {name}}.Encode()
	return pc.c.DoJSON(ctx, http.MethodDelete, "/v1/products/delete", q, nil, nil, nil)
}

func (f ProductForm) fields() map[string]string {
	fields := map[string]string{"name": f.Name}
	if f.Description != "" {
		fields["description"] = f.Description
	}
	if f.Price != "" {
		fields["price"] = f.Price
	}
	if f.Category != "" {
		fields["category"] = f.Category
	}
	return fields
}

func (pc *ProductAdminClient) submitMultipart(ctx context.Context, method, path string, fields map[string]string, form ProductForm) (Product, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return Product{}, fmt.Errorf("write form field %s: %w", k, err)
		}
	}

	if form.Image != nil {
		name := form.ImageName
		if name == "" {
			name = "image"
		}
		fw, err := w.CreateFormFile("image", name)
		if err != nil {
			return Product{}, fmt.Errorf("create image part: %w", err)
		}
		if _, err := io.Copy(fw, form.Image); err != nil {
			return Product{}, fmt.Errorf("copy image: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return Product{}, err
	}

	headers := http.Header{}
	headers.Set("Content-Type", w.FormDataContentType())

	resp, err := pc.c.Do(ctx, method, path, "", &buf, headers)
	if err != nil {
		return Product{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Product{}, decodeAPIError(resp)
	}

	var out Product
	if err := jsonDecode(resp.Body, &out); err != nil {
		return Product{}, fmt.Errorf("decode product response: %w", err)
	}
	return out, nil
}
