package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// CatalogUseCase alta y listado de productos y contactos.
type CatalogUseCase struct {
	products repository.ProductRepository
	contacts repository.ContactRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository, contacts repository.ContactRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, contacts: contacts}
}

// CreateProduct crea un producto. SKU repetido retorna domain.ErrDuplicate.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if rule := dto.MoneyRule(in.UnitCost); rule != "" {
		return nil, dto.NewValidationError("unit_cost", rule)
	}
	p := &entity.Product{Name: in.Name, SKU: in.SKU, UnitCost: in.UnitCost}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListProducts productos por nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// CreateContact crea un cliente o proveedor.
func (uc *CatalogUseCase) CreateContact(ctx context.Context, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	c := &entity.Contact{Name: in.Name, Email: in.Email, Phone: strings.TrimSpace(in.Phone)}
	if err := uc.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// ListContacts contactos por nombre.
func (uc *CatalogUseCase) ListContacts(ctx context.Context) ([]dto.ContactResponse, error) {
	list, err := uc.contacts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toContactResponse(c))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, SKU: p.SKU, UnitCost: p.UnitCost, CreatedAt: p.CreatedAt}
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone, CreatedAt: c.CreatedAt}
}
