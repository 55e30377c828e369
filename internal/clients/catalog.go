package clients

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type CatalogClient struct{ c *Client }

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{c: c} }

func (cc *CatalogClient) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := cc.c.DoJSON(ctx, http.MethodGet, "/v1/products/getproducts", "", nil, &out, nil)
	return out, err
}

func (cc *CatalogClient) GetProduct(ctx context.Context, id int64) (Product, error) {
	var out Product
	err := cc.c.DoJSON(ctx, http.MethodGet, "/v1/products/get/"+strconv.FormatInt(id, 10), "", nil, &out, nil)
	return out, err
}

func (cc *CatalogClient) ByCategory(ctx context.Context, category string) ([]Product, error) {
	var out []Product
	q := url.Values{"name": {category}}.Encode()
	err := cc.c.DoJSON(ctx, http.MethodGet, "/v1/products/category/byname", q, nil, &out, nil)
	return out, err
}

func (cc *CatalogClient) SearchByName(ctx context.Context, name string) ([]Product, error) {
	var out []Product
	q := url.Values{"name": {name}}.Encode()
	err := cc.c.DoJSON(ctx, http.MethodGet, "/v1/products/getwithname", q, nil, &out, nil)
	return out, err
}

type CategoryClient struct{ c *Client }

func NewCategoryClient(c *Client) *CategoryClient { return &CategoryClient{c: c} }

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (cc *CategoryClient) List(ctx context.Context) ([]Category, error) {
	var out []Category
	err := cc.c.DoJSON(ctx, http.MethodGet, "/categories/getCategory", "", nil, &out, nil)
	return out, err
}
