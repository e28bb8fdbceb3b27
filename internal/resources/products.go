package resources

import (
	"fmt"
	"slices"

	apierr "github.com/paysim/paysim/internal/errors"
	"github.com/paysim/paysim/internal/models"
	"github.com/paysim/paysim/internal/store"
)

// ProductCreateParams creates a good or service.
type ProductCreateParams struct {
	ID                  string         `json:"id"`
	Active              *bool          `json:"active"`
	Attributes          []string       `json:"attributes"`
	Caption             *string        `json:"caption"`
	Description         *string        `json:"description"`
	Images              []string       `json:"images"`
	Metadata            map[string]any `json:"metadata"`
	Name                string         `json:"name"`
	Shippable           *bool          `json:"shippable"`
	StatementDescriptor *string        `json:"statement_descriptor"`
	Type                string         `json:"type"`
	UnitLabel           *string        `json:"unit_label"`
	URL                 *string        `json:"url"`
}

// ProductUpdateParams carries the mutable product fields.
type ProductUpdateParams struct {
	Active      *bool          `json:"active"`
	Description *string        `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	Name        *string        `json:"name"`
	UnitLabel   *string        `json:"unit_label"`
}

// CreateProduct stores a product. Goods carry the physical-goods fields;
// services leave them out entirely.
func (s *Service) CreateProduct(accountID string, params *ProductCreateParams) (*models.Product, error) {
	if params.Name == "" {
		return nil, apierr.MissingParam("Missing required param: name.")
	}
	typ := params.Type
	if typ == "" {
		typ = "service"
	}
	if typ != "good" && typ != "service" {
		return nil, apierr.Validation("", fmt.Sprintf("Invalid type: must be one of good or service, got %s", typ), "type")
	}
	id := params.ID
	if id == "" {
		id = newID("prod")
	}
	if s.products.Contains(accountID, id) {
		return nil, apierr.Conflict("product")
	}

	active := true
	if params.Active != nil {
		active = *params.Active
	}
	attributes := params.Attributes
	if attributes == nil {
		attributes = []string{}
	}
	images := params.Images
	if images == nil {
		images = []string{}
	}
	now := s.now().Unix()
	product := &models.Product{
		ID:                  id,
		Object:              "product",
		Active:              active,
		Attributes:          attributes,
		Created:             now,
		Description:         params.Description,
		Images:              images,
		Metadata:            coerceMetadata(params.Metadata),
		Name:                params.Name,
		StatementDescriptor: params.StatementDescriptor,
		Type:                typ,
		UnitLabel:           params.UnitLabel,
		Updated:             now,
	}
	if typ == "good" {
		product.Caption = params.Caption
		product.DeactivateOn = []string{}
		shippable := true
		if params.Shippable != nil {
			shippable = *params.Shippable
		}
		product.Shippable = &shippable
		product.URL = params.URL
	}
	s.products.Put(accountID, product)
	return product, nil
}

// RetrieveProduct returns the stored product.
func (s *Service) RetrieveProduct(accountID, id, param string) (*models.Product, error) {
	product, ok := s.products.Get(accountID, id)
	if !ok {
		return nil, apierr.NotFound("product", id, param)
	}
	return product, nil
}

// UpdateProduct mutates the stored record in place.
func (s *Service) UpdateProduct(accountID, id string, params *ProductUpdateParams) (*models.Product, error) {
	product, err := s.RetrieveProduct(accountID, id, "id")
	if err != nil {
		return nil, err
	}
	if params.Active != nil {
		product.Active = *params.Active
	}
	if params.Description != nil {
		product.Description = params.Description
	}
	if params.Metadata != nil {
		product.Metadata = coerceMetadata(params.Metadata)
	}
	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.UnitLabel != nil {
		product.UnitLabel = params.UnitLabel
	}
	product.Updated = s.now().Unix()
	return product, nil
}

// DeleteProduct removes the product.
func (s *Service) DeleteProduct(accountID, id string) (*Deleted, error) {
	if _, err := s.RetrieveProduct(accountID, id, "id"); err != nil {
		return nil, err
	}
	s.products.Remove(accountID, id)
	return &Deleted{ID: id, Object: "product", Deleted: true}, nil
}

// ProductListParams narrows the product listing before pagination.
type ProductListParams struct {
	store.ListParams
	Active    *bool
	IDs       []string
	Shippable *bool
	Type      string
	URL       string
}

func (p ProductListParams) matches(product *models.Product) bool {
	if p.Active != nil && product.Active != *p.Active {
		return false
	}
	if len(p.IDs) > 0 && !slices.Contains(p.IDs, product.ID) {
		return false
	}
	if p.Shippable != nil && (product.Shippable == nil || *product.Shippable != *p.Shippable) {
		return false
	}
	if p.Type != "" && product.Type != p.Type {
		return false
	}
	if p.URL != "" && (product.URL == nil || *product.URL != p.URL) {
		return false
	}
	return true
}

// ListProducts pages the account's products in creation order, after
// applying any of the active/ids/shippable/type/url filters.
func (s *Service) ListProducts(accountID string, params ProductListParams) (*models.List[*models.Product], error) {
	records := s.products.GetAll(accountID)
	filtered := make([]*models.Product, 0, len(records))
	for _, product := range records {
		if params.matches(product) {
			filtered = append(filtered, product)
		}
	}
	page, hasMore, err := store.ApplyListOptions(filtered, params.ListParams, resolver(s.products, accountID, "product"))
	if err != nil {
		return nil, err
	}
	return models.NewList("/v1/products", page, hasMore), nil
}
